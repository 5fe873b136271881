package enums

import "fmt"

// unmarshalEnum разбирает значение перечисления из YAML/JSON.
// Неизвестная строка — ошибка конфигурации, а не молчаливый Unknown.
func unmarshalEnum[T comparable](text []byte, name string, dst *T, parse func(string) T, unknown T) error {
	v := parse(string(text))
	if v == unknown {
		return fmt.Errorf("unknown %s %q", name, string(text))
	}
	*dst = v
	return nil
}
