package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"brigadas_admin_go/services"
)

// Prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
// The password is read from the first argument or from stdin.
func main() {
	var password string
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		fmt.Fprint(os.Stderr, "Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("Failed to read password: %v", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if err := services.ValidatePassword(password); err != nil {
		log.Fatalf("Weak password:\n%v", err)
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println(hash)
}
