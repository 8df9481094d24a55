package pkg

import (
	"io"
	"log"
	"os"
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNicknameLength = 10

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// InitLog sends the standard logger to dest. An empty dest discards output,
// the terminal belongs to the UI.
func InitLog(dest, prefix string) {
	log.SetPrefix(prefix)
	if dest == "" {
		log.SetOutput(io.Discard)
		return
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
}

// Nickname strips characters that are unsafe to show and truncates the
// result. It returns an empty string when nothing is left.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	}

	return nick
}

func RandomNickname() string {
	return Nickname(petname.Generate(1, ""))
}

// NicknameOrRandom sanitizes nick and falls back to a random name.
func NicknameOrRandom(nick string) string {
	if n := Nickname(nick); n != "" {
		return n
	}

	return RandomNickname()
}
