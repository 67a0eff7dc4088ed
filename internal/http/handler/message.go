package handler

type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

var oopsErr = Response{
	Message: "Oops, something went wrong on our end!",
}
