package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init это обычный logrus-логгер с настройками по умолчанию,
// поэтому библиотечный код может писать в него без проверок на nil.
var Log = logrus.New()

// fileOutput - true, если логи пишутся в LOG_FILE.
var fileOutput bool

// Init инициализирует глобальный логгер из переменных окружения.
// Вызывается один раз при старте хоста (cmd/*) и в TestMain.
//
//	LOG_LEVEL  - уровень (по умолчанию info)
//	LOG_FORMAT - json | text
//	LOG_FILE   - путь к файлу логов (по умолчанию stdout)
func Init() {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	var out io.Writer = os.Stdout
	fileOutput = false
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			out = f
			fileOutput = true
		}
	}

	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   !fileOutput,
		})
	}

	Log.SetOutput(out)
}

// Quiet глушит вывод в stdout. Терминальный хост занимает экран целиком,
// поэтому без LOG_FILE логи просто выбрасываются.
func Quiet() {
	if fileOutput {
		return
	}
	Log.SetOutput(io.Discard)
}
