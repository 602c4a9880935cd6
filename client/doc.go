// Package client implements the Auth Status Client: a thin orchestrator that
// turns operator intents (register, login, status refresh, logout, Google
// account linking and Google login redirect) into auth API calls and keeps the
// local view of the session in sync with the server.
//
// It holds three pieces of state:
//   - Snapshot, the current belief about the session (user + authenticated flag);
//     it is always replaced whole, never mutated.
//   - Forms, the retained operator input for register, login and link.
//   - one Result per Section; non-error results expire after the message TTL,
//     error results persist until superseded.
//
// Every state change is announced to registered listeners.
//
// Example:
//
//	service := api.New("http://localhost:8080/api/v1", api.WithHTTPClient(httpClient))
//	cli := client.New(service, client.WithListener(render))
//	_ = cli.Initialize(ctx)
//	cli.UpdateForms(func(f *client.Forms) { f.Login = client.LoginForm{Email: "a@b.com", Password: "x"} })
//	_ = cli.Login(ctx)
package client
