package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeEntryNumberToken creates an opaque cursor positioned after the given entry number.
// Listing is newest-first, so the next page holds entry numbers strictly below it.
func EncodeEntryNumberToken(tenantID string, entryNumber int64) string {
	return EncodeMultiFieldToken(tenantID, strconv.FormatInt(entryNumber, 10))
}

// DecodeEntryNumberToken parses a cursor created by EncodeEntryNumberToken.
// A token issued for another tenant is rejected.
func DecodeEntryNumberToken(tenantID, token string) (int64, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] != tenantID {
		return 0, fmt.Errorf("invalid pagination token (tenant mismatch)")
	}
	entryNumber, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (entry number parse): %w", err)
	}
	return entryNumber, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
