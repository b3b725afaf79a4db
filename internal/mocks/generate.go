// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the auth ports. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	sessions := mocks.NewMockSessionStore(ctrl)
//	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
package mocks

// Generate mock for SessionStore interface from internal/ports.
// This creates MockSessionStore with Save, Get, and Delete.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/ratehub/ratehub-ui/internal/ports SessionStore

// Generate mock for CredentialsProvider interface from internal/ports.
// This creates MockCredentialsProvider with Login.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=credentials_provider_mock.go github.com/ratehub/ratehub-ui/internal/ports CredentialsProvider
