package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokens counts tokens of text with the cl100k encoding used by gpt-3.5/gpt-4.
func NumTokens(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-3.5-turbo")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
