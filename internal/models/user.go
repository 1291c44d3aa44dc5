package models

type UserDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	Username  string `json:"username" bson:"username"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

// Payload de alta de usuario (solo username, los usuarios acá son
// identidades opacas, sin credenciales).
type UserCreateRequest struct {
	Username string `json:"username"`
}
