package entity

type Player struct {
	Name string `json:"name"`
	Mark string `json:"mark"`
}

type Move struct {
	Player string `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}
