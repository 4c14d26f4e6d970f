package internal

import "time"

type Config struct {
	DatabaseURL        string        `env:"DATABASE_URL,required=true"`
	LogLevel           string        `env:"LOG_LEVEL,required=true"`
	TeacherCodeHash    string        `env:"TEACHER_CODE_HASH,required=true"`
	BufferSize         int           `env:"BUFFER_SIZE,required=true"`
	MailboxSize        int           `env:"MAILBOX_SIZE,required=true"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT,required=true"`
	JanitorInterval    time.Duration `env:"JANITOR_INTERVAL,required=true"`
	MetricInterval     time.Duration `env:"METRIC_INTERVAL,required=true"`
	FreeTopicLimit     int           `env:"FREE_TOPIC_LIMIT,required=true"`
	SearchLimit        int           `env:"SEARCH_LIMIT,required=true"`
	PopularQueryLimit  int           `env:"POPULAR_QUERY_LIMIT,required=true"`
}
