// Package input reads raw terminal keystrokes and maps them to
// high-level game intents through a small layered pipeline.
package input

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) (string, []byte) {
	if firstByte != 0x1b {
		return "", []byte{firstByte}
	}

	// Read second byte
	b2, err := readByte()
	if err != nil {
		return "", nil
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		// Read third byte (the actual key code)
		b3, err := readByte()
		if err != nil {
			return "", nil
		}

		switch b3 {
		case 'A':
			return "arrow_up", nil
		case 'B':
			return "arrow_down", nil
		case 'C':
			return "arrow_right", nil
		case 'D':
			return "arrow_left", nil
		}
		// Unknown escape sequence - discard it
		return "", nil
	}

	// Not an arrow sequence, return the bytes we read
	return "", []byte{firstByte, b2}
}

// singleKeyCodes are keys that fire immediately without Enter.
var singleKeyCodes = map[byte]string{
	'>': ">",
	'<': "<",
}

// ReadCommand reads one command from the terminal. Arrow keys and
// punctuation commands return immediately; letters start a typed word
// ("search", "quit", ...) confirmed with Enter, so both single-key play
// and spelled-out commands work.
func ReadCommand() string {
	// Put terminal into raw mode to detect arrow keys
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	// Read first byte
	b1, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	// Check for arrow key
	if arrowKey, _ := tryReadArrowKey(b1); arrowKey != "" {
		fmt.Println()
		return arrowKey
	}

	// Ctrl+C quits like the quit command
	if b1 == 3 {
		fmt.Println()
		return "quit"
	}

	if code, ok := singleKeyCodes[b1]; ok {
		fmt.Println()
		return code
	}

	// Newline/enter with nothing typed - return empty
	if b1 == '\n' || b1 == '\r' {
		return ""
	}

	// For regular characters, collect input until Enter. A single letter
	// followed by Enter is a key command; longer words are looked up as
	// spelled-out commands.
	var input []byte
	if b1 >= 32 && b1 < 127 {
		input = append(input, b1)
		fmt.Print(string(b1)) // Echo the character
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		// Arrow keys pressed during text entry are discarded
		if b == 0x1b {
			tryReadArrowKey(b)
			continue
		}

		// Handle backspace
		if b == 127 || b == 8 {
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b") // Erase character from display
			}
			continue
		}

		// Handle Enter
		if b == '\n' || b == '\r' {
			fmt.Println()
			break
		}

		// Handle Ctrl+C
		if b == 3 {
			fmt.Println()
			return "quit"
		}

		// Only add printable characters
		if b >= 32 && b < 127 {
			input = append(input, b)
			fmt.Print(string(b)) // Echo the character
		}
	}

	return string(input)
}
