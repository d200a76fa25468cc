package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla el destino y el nivel del log. En "development" la salida
// es consola legible para trabajar el tablero en local; en cualquier otro
// entorno se emite JSON por línea para el agregador.
type Config struct {
	Env   string
	Level string // trace, debug, info, warn, error; vacío o inválido = info
}

// Logger envuelve a zerolog para inyectarse por constructor en los casos de
// uso (el caso de uso de tareas lo usa para registrar fallos del store
// remoto sin abortar la sesión).
type Logger struct {
	z zerolog.Logger
}

// New construye el logger del servicio y lo fija también como logger global
// de zerolog, para librerías que escriben por esa vía.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	z := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = z

	return &Logger{z: z}
}

func (l *Logger) Trace() *zerolog.Event { return l.z.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.z.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.z.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.z.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.z.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.z.Fatal() }

// With abre un sublogger con campos fijos (p.ej. el backend de tareas activo).
func (l *Logger) With() zerolog.Context {
	return l.z.With()
}

// Zerolog expone el logger interno para APIs que piden zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.z
}
