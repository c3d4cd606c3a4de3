// ABOUTME: Login reducer managing the credential form and the login/register round trips.
// ABOUTME: Validates each field on update and guards submission client-side.
package core

import "github.com/2389-research/gifbox/wire"

func reduceLogin(ev LoginEvent, m *Model, o *Orders) {
	s := &m.Login
	switch e := ev.(type) {
	case UpdateEmail:
		s.Email = e.Value
		s.NetworkError = ""
		if e.Value == "" || wire.ValidEmail(e.Value) {
			s.EmailError = ""
		} else {
			s.EmailError = wire.EmailErrorMessage
		}

	case UpdatePassword:
		s.Password = e.Value
		s.NetworkError = ""
		if wire.ValidPassword(e.Value) {
			s.PasswordError = ""
		} else {
			s.PasswordError = wire.PasswordErrorMessage
		}

	case SubmitLogin:
		if !s.CanSubmit() {
			o.Skip()
			return
		}
		s.HasNetworkRequest = true
		s.NetworkError = ""
		o.Perform(LoginCommand{Email: s.Email, Password: s.Password})

	case SubmitRegister:
		if !s.CanSubmit() {
			o.Skip()
			return
		}
		s.HasNetworkRequest = true
		s.NetworkError = ""
		o.Perform(RegisterCommand{Email: s.Email, Password: s.Password})

	case LoginSucceeded:
		authenticated(e.User, m, o)

	case RegisterSucceeded:
		authenticated(e.User, m, o)

	case LoginFailed:
		s.HasNetworkRequest = false
		s.NetworkError = e.Err.Description

	case RegisterFailed:
		s.HasNetworkRequest = false
		s.NetworkError = e.Err.Description

	default:
		o.Skip()
	}
}

// authenticated installs a new session, persists it, and moves to Search.
func authenticated(u wire.User, m *Model, o *Orders) {
	m.Login.HasNetworkRequest = false
	m.Login.Password = ""
	m.User = &u
	o.Perform(PersistSessionCommand{User: u})
	o.Send(RouteTo{Route: RouteSearch})
}
