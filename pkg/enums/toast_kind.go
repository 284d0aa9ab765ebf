package enums

import "fmt"

// ToastKind is the severity of a transient notification.
type ToastKind string

const (
	ToastKindSuccess ToastKind = "success"
	ToastKindError   ToastKind = "error"
)

func (k ToastKind) String() string {
	return string(k)
}

func (k ToastKind) IsValid() bool {
	return k == ToastKindSuccess || k == ToastKindError
}

func ParseToastKind(value string) (ToastKind, error) {
	kind := ToastKind(value)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid toast kind %q", value)
	}
	return kind, nil
}
