package handle_webhook

// Request тело и подпись вебхука
type Request struct {
	Payload   []byte
	Signature string
}

// Response результат обработки события
type Response struct {
	EventID    string
	EventType  string
	Handled    bool // false для событий, которые сервис не обрабатывает
	Dispatched bool
}
