package domain

import "time"

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// DEFAULT_TOKEN_SYMBOL replaces a token symbol that could not be read
	DEFAULT_TOKEN_SYMBOL = "TOKEN"

	// DEFAULT_SURVEY_TITLE is used when a contract returns an empty title
	DEFAULT_SURVEY_TITLE = "Survey"

	// DEFAULT_QUESTION_LABEL is used when an option text carries no question text
	DEFAULT_QUESTION_LABEL = "Question"

	// DEFAULT_ANALYSIS_TEXT is returned when the AI service answers with an empty text
	DEFAULT_ANALYSIS_TEXT = "No analysis available."

	// STATUS_MESSAGE_TTL is how long a vote status message stays visible
	STATUS_MESSAGE_TTL = 5 * time.Second
)
