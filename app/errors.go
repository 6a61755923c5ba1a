package app

import "github.com/cockroachdb/errors"

var (
	ErrInvalidArgument = errors.New("app: invalid argument")
	ErrWindowSystem    = errors.New("app: window system error")
	ErrWindowCreate    = errors.New("app: window creation failed")
	ErrContext         = errors.New("app: context setup failed")
	ErrInitialization  = errors.New("app: initialization failed")
)

func startupError(kind error, err error, msg string) error {
	if err == nil {
		err = errors.New(msg)
	} else {
		err = errors.Wrap(err, msg)
	}
	return errors.Mark(errors.Wrap(err, "startup"), kind)
}
