// Package mocks provides centralized mock implementations for testing.
//
// Store mocks embed testify's mock.Mock and are configured with On(...).
// Auth mocks use function fields with simple defaults:
//
//	jwt := &mocks.MockJWTService{
//	    GenerateTokenFn: func(ctx context.Context, username string) (string, error) {
//	        return "mocked-token", nil
//	    },
//	}
package mocks
