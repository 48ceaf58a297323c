package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal the commands talk to
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// Confirm задает вопрос да/нет
	Confirm(prompt string) (bool, error)
	// Select предлагает выбрать один из вариантов
	Select(title string, options []string) (string, error)
	Write(p []byte) (n int, err error)
}
