package source

import "errors"

var UnsupportedSourceError = errors.New("Unsupported query for this Data Source")
