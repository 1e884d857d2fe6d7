package entropy

import zxcvbn "github.com/ccojocar/zxcvbn-go"

// Score cross-checks a concrete generated password with the zxcvbn pattern
// matcher and returns its 0-4 score. This complements the model-based
// estimates: the model scores the configuration, zxcvbn scores one output.
func Score(password string) int {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
