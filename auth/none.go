package auth

// GodSession returns a Session that passes every precondition, the
// bootstrap identity the engine uses before any account exists.
func GodSession() Session { return Session{Role: RoleGod} }
