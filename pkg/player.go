package pkg

import (
	petname "github.com/dustinkirkland/golang-petname"
)

const nicknameWords = 2

// Nickname returns nick, or a random two word name when it is empty.
func Nickname(nick string) string {
	if nick != "" {
		return nick
	}

	return petname.Generate(nicknameWords, "-")
}
