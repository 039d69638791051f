package env

import (
	"errors"
	"os"
	"strconv"
)

var ErrEnvVarEmpty = errors.New("getenv: environment variable empty")

func GetStr(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return v, ErrEnvVarEmpty
	}
	return v, nil
}

func GetInt(key string) (int, error) {
	s, err := GetStr(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func GetInt32(key string) (int32, error) {
	i, err := GetInt(key)
	return int32(i), err
}

// GetIntOrDefault é pra configs opcionais com um padrão razoável,
// tipo os limites de tamanho de time.
func GetIntOrDefault(key string, defaultValue int) int {
	v, err := GetInt(key)
	if err != nil {
		return defaultValue
	}
	return v
}

func GetBool(key string) (bool, error) {
	s, err := GetStr(key)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, err
	}
	return v, nil
}
