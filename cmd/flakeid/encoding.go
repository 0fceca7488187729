package main

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

const (
	encodingDecimal = "decimal"
	encodingBase2   = "base2"
	encodingBase32  = "base32"
	encodingBase36  = "base36"
	encodingBase58  = "base58"
	encodingBase64  = "base64"
)

var encodings = []string{
	encodingDecimal,
	encodingBase2,
	encodingBase32,
	encodingBase36,
	encodingBase58,
	encodingBase64,
}

func encodeID(id uint64, encoding string) (string, error) {

	sf := snowflake.ParseInt64(int64(id))

	switch encoding {
	case encodingDecimal:
		return strconv.FormatUint(id, 10), nil
	case encodingBase2:
		return sf.Base2(), nil
	case encodingBase32:
		return sf.Base32(), nil
	case encodingBase36:
		return sf.Base36(), nil
	case encodingBase58:
		return sf.Base58(), nil
	case encodingBase64:
		return sf.Base64(), nil
	}

	return "", fmt.Errorf("%w: %v", ErrUnknownEncoding, encoding)
}

func decodeID(value string, encoding string) (uint64, error) {

	var sf snowflake.ID
	var err error

	switch encoding {
	case encodingDecimal:
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidID, err)
		}
		return checkID(id)
	case encodingBase2:
		sf, err = snowflake.ParseBase2(value)
	case encodingBase32:
		sf, err = snowflake.ParseBase32([]byte(value))
	case encodingBase36:
		sf, err = snowflake.ParseBase36(value)
	case encodingBase58:
		sf, err = snowflake.ParseBase58([]byte(value))
	case encodingBase64:
		sf, err = snowflake.ParseBase64(value)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownEncoding, encoding)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	return checkID(uint64(sf.Int64()))
}

// IDs never have the top bit set
func checkID(id uint64) (uint64, error) {
	if id>>63 != 0 {
		return 0, fmt.Errorf("%w: top bit set", ErrInvalidID)
	}
	return id, nil
}
