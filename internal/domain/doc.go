// Package domain contains the core business entities (users, categories and
// tasks) and the error taxonomy shared by every layer. It has no dependencies
// on storage or delivery mechanisms.
package domain
