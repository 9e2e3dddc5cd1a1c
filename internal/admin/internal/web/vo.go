package web

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginVO struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type ProfileVO struct {
	Username string `json:"username"`
}
