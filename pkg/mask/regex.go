package mask

import "regexp"

var nonDigitRegex = regexp.MustCompile(`\D`)
