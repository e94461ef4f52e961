// Package console holds the client-side state of the employee console and
// the actions that reconcile it with the REST backend.
//
// A Controller owns the Record Store (the last list the server returned), the
// Edit-Session (creating a new record or editing an existing one), the form
// contents, the active search term and a Notifier. Every mutating action
// follows the same pipeline: validate, call the API, then reload the whole
// store from the server. Nothing is patched locally.
//
// Front ends (the web console in internal/handlers and the CLI in
// internal/cli) call the actions and read a View snapshot to render.
package console
