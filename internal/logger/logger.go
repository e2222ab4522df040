package logger

import (
	"fmt"
	"time"
)

// Codes ANSI pour les couleurs
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

func printLine(color, prefix, message string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s%s\n", ColorGray, timestamp, ColorReset, color, prefix, fmt.Sprintf(message, args...), ColorReset)
}

// Info log une information générale (bleu)
func Info(message string, args ...interface{}) {
	printLine(ColorBlue, "", message, args...)
}

// Success log un succès (vert)
func Success(message string, args ...interface{}) {
	printLine(ColorGreen, "✓ ", message, args...)
}

// Warning log un avertissement (jaune)
func Warning(message string, args ...interface{}) {
	printLine(ColorYellow, "⚠ ", message, args...)
}

// Error log une erreur (rouge)
func Error(message string, args ...interface{}) {
	printLine(ColorRed, "✗ ", message, args...)
}

// Debug log un message de debug (gris) - utilisé seulement en développement
func Debug(message string, args ...interface{}) {
	printLine(ColorGray, "DEBUG: ", message, args...)
}

// Request log une requête HTTP avec son status et sa durée
func Request(method, path string, statusCode int, duration time.Duration) {
	timestamp := time.Now().Format("15:04:05")

	var color string
	switch {
	case statusCode >= 200 && statusCode < 300:
		color = ColorGreen
	case statusCode >= 300 && statusCode < 400:
		color = ColorCyan
	case statusCode >= 400 && statusCode < 500:
		color = ColorYellow
	default:
		color = ColorRed
	}

	fmt.Printf("%s[%s]%s %s%-6s%s %s%-50s%s %s[%d]%s %s(%s)%s\n",
		ColorGray, timestamp, ColorReset,
		ColorPurple, method, ColorReset,
		ColorWhite, path, ColorReset,
		color, statusCode, ColorReset,
		ColorGray, duration.Round(time.Millisecond), ColorReset)
}
