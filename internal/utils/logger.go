package utils

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotatie-instellingen voor het optionele logbestand
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

var logger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

// SetupLogging sends logs to stderr and, when logFile is set, also to a
// size-rotated log file. Stdout stays reserved for user-facing output.
func SetupLogging(logFile string) io.Closer {
	if logFile == "" {
		logger = log.New(os.Stderr, "", log.Ldate|log.Ltime)
		return nopCloser{}
	}

	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}
	multiWriter := io.MultiWriter(os.Stderr, rotating)
	logger = log.New(multiWriter, "", log.Ldate|log.Ltime|log.Lshortfile)
	return rotating
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OverrideLogger replaces the central logger, mainly for tests.
func OverrideLogger(l *log.Logger) {
	logger = l
}

func LogInfo(message string, args ...any) {
	logger.Println("INFO: " + fmt.Sprintf(message, args...))
}

func LogWarning(message string, args ...any) {
	logger.Println("WARNING: " + fmt.Sprintf(message, args...))
}

func LogError(message string, args ...any) {
	logger.Println("ERROR: " + fmt.Sprintf(message, args...))
}

func LogDebug(message string, args ...any) {
	logger.Println("DEBUG: " + fmt.Sprintf(message, args...))
}
