// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the todo
// client service and the terminal UI.
//
// Keeping them in one place ensures consistent wording between the status
// banner, the list placeholder and the tests that assert on them.
package app

const (
	// MsgEnterToken is shown when the token input is submitted empty.
	MsgEnterToken = "Please enter a token"

	// MsgAuthFailed is shown for every failed token probe. The cause is only
	// logged.
	MsgAuthFailed = "Authentication failed. Please check your token."

	MsgAuthSuccess = "Authentication successful"
	MsgLoggedOut   = "Logged out successfully"

	// MsgPublicPrivateMode replaces the list in the public tier when the
	// server refuses anonymous reads.
	MsgPublicPrivateMode = "Private mode is enabled. Please use the admin panel to view todos."

	// MsgProvideValidToken replaces the list in the app tier after a 401/403.
	MsgProvideValidToken = "Please provide a valid token to view todos"

	// MsgAuthRequired is the admin list placeholder and the app tier status
	// message after a 401/403.
	MsgAuthRequired = "Authentication required to view todos"

	MsgLoadFailed = "Failed to load todos"
	MsgNoTodos    = "No todos found"
	MsgLoading    = "Loading..."

	MsgCopied        = "Copied to clipboard"
	MsgCopyFailed    = "Failed to copy to clipboard"
	MsgNothingToCopy = "Nothing to copy"

	MsgTitleRequired = "Title is required"

	MsgTodoAdded     = "Todo added successfully"
	MsgTodoAddFailed = "Failed to add todo"

	MsgTodoUpdated      = "Todo updated successfully"
	MsgTodoUpdateFailed = "Failed to update todo"

	MsgConfirmDelete    = "Are you sure you want to delete this todo?"
	MsgTodoDeleted      = "Todo deleted successfully"
	MsgTodoDeleteFailed = "Failed to delete todo"

	MsgPrivateModeEnabled      = "Private mode enabled"
	MsgPrivateModeDisabled     = "Private mode disabled"
	MsgPrivateModeToggleFailed = "Failed to toggle private mode"

	MsgDarkModeEnabled  = "Dark mode enabled"
	MsgLightModeEnabled = "Light mode enabled"

	MsgPreparingExport = "Preparing export..."
	MsgExportSuccess   = "Export successful"
	MsgExportFailed    = "Failed to export todos"

	MsgInvalidJSON            = "Invalid JSON format"
	MsgInvalidBundleFields    = "Invalid JSON format: missing required fields"
	MsgConfirmImport          = "This will replace all existing todos. Are you sure you want to continue?"
	MsgImportCancelled        = "Import cancelled"
	MsgReadingFile            = "Reading file..."
	MsgImportingTodos         = "Importing todos..."
	MsgSelectValidJSONFile    = "Please select a valid JSON file"
	MsgImportSuccessFormat    = "Import successful: %d todos imported"
	MsgImportFailedFormat     = "Failed to import todos: %s"
	MsgImportHTTPStatusFormat = "HTTP error! status: %d"
	MsgImportFailedFallback   = "network error"

	// MsgTokenRequiredFormat is the app tier gate message; the verb phrase
	// is one of the Op* constants.
	MsgTokenRequiredFormat = "Authentication token is required to %s"

	// MsgMustAuthenticateFormat is the admin tier gate message.
	MsgMustAuthenticateFormat = "You must be authenticated to %s"

	// MsgNotPermittedFormat is shown when the tier lacks the capability.
	MsgNotPermittedFormat = "This client cannot %s"
)

// Operation phrases completing the gate messages above.
const (
	OpAddTodos          = "add todos"
	OpUpdateTodos       = "update todos"
	OpDeleteTodos       = "delete todos"
	OpTogglePrivateMode = "toggle private mode"
	OpExportTodos       = "export todos"
	OpImportTodos       = "import todos"
	OpAuthenticate      = "authenticate"
)
