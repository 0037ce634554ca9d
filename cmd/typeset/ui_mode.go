package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of --ui. It implements pflag.Value so cobra rejects bad input at parse time.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

var uiModeNames = [...]string{uiModeAuto: "auto", uiModeOn: "on", uiModeOff: "off"}

func (m *uiMode) String() string { return uiModeNames[*m] }
func (m *uiMode) Type() string   { return "auto|on|off" }

func (m *uiMode) Set(value string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		v = "auto"
	}
	for i, name := range uiModeNames {
		if v == name {
			*m = uiMode(i)
			return nil
		}
	}
	return fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI: в auto режиме прогресс показываем только на терминале и только для нескольких файлов.
func (m uiMode) shouldUseTUI(files int) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return files > 1 && isTerminal(os.Stdout)
}
