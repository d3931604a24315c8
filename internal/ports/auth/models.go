package auth

// Claims identifica a quien hace el request (un miembro del personal).
type Claims struct {
	UserID string
}
