package formaterror

import "strings"

// FormatError maps raw driver errors onto the field-level messages the
// clients display. Anything unrecognized stays a generic message so
// internals never leak to the caller.
func FormatError(errString string) map[string]string {
	errorMessages := make(map[string]string)

	if strings.Contains(errString, "username") {
		errorMessages["Taken_username"] = "Username Already Taken"
	}
	if strings.Contains(errString, "email") {
		errorMessages["Taken_email"] = "Email Already Taken"
	}
	if strings.Contains(errString, "idx_likes_unique") {
		errorMessages["Double_like"] = "You already liked this post"
	}
	if strings.Contains(errString, "idx_follows_unique") {
		errorMessages["Double_follow"] = "Follow request already sent"
	}
	if strings.Contains(errString, "hashedPassword") {
		errorMessages["Incorrect_password"] = "Incorrect Password"
	}
	if strings.Contains(errString, "record not found") {
		errorMessages["No_record"] = "No Record Found"
	}
	if len(errorMessages) > 0 {
		return errorMessages
	}
	return map[string]string{"Incorrect_details": "Incorrect Details"}
}
