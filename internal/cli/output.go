package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Коды выхода CLI.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // операция отклонена (пустая корзина, ошибка записи)
	ExitCommandError = 2 // неверные аргументы или не удалось открыть хранилище
)

// ExitError — ошибка с кодом выхода процесса.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode возвращает код из ExitError или ExitFailure для прочих ошибок.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// printer пишет результат команды текстом или JSON.
type printer struct {
	format string
	w      io.Writer
}

func (p printer) print(data any, text func(w io.Writer)) error {
	if p.format == "json" {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	text(p.w)
	return nil
}
