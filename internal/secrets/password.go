package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "internwatch"

// SMTPPassword resolves the mail password: keychain first, SMTP_PASS env as
// the fallback for headless schedulers that have no keychain.
func SMTPPassword(username, host string) (string, error) {
	account := SMTPKeyringAccount(username, host)
	if pw, err := keyring.Get(KeyringService, account); err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}
	if pw := strings.TrimSpace(os.Getenv("SMTP_PASS")); pw != "" {
		return pw, nil
	}
	return "", errors.New("SMTP password not found (set it in the keychain or via SMTP_PASS)")
}

func SetSMTPPassword(username, host, password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, SMTPKeyringAccount(username, host), password)
}

func DeleteSMTPPassword(username, host string) error {
	return keyring.Delete(KeyringService, SMTPKeyringAccount(username, host))
}

func SMTPKeyringAccount(username, host string) string {
	return fmt.Sprintf("internwatch:smtp:%s@%s", username, host)
}
