package constants

const (
	MAX_QUERY_LENGTH         = 200
	MAX_TOPIC_LENGTH         = 200
	MAX_LOCAL_POLL_OPTIONS   = 10
	MAX_LOCAL_QUESTION_CHARS = 280
)
