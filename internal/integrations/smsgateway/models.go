package smsgateway

// Message тело запроса к шлюзу
type Message struct {
	To   string `json:"to"`   // номер только из цифр, с кодом страны
	Body string `json:"body"` // текст сообщения
}
