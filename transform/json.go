package transform

import "encoding/json"

// jsonPair renders (name, number) as the two-element JSON array the
// original Python implementation's tuple values produce.
func jsonPair(name string, number int) ([]byte, error) {
	return json.Marshal([2]interface{}{name, number})
}

// jsonValuePair renders (name, value) as a two-element JSON array for
// pairs whose second element isn't a plain number.
func jsonValuePair(name string, value interface{}) ([]byte, error) {
	return json.Marshal([2]interface{}{name, value})
}

// jsonValuePairAny renders (a, b) as a two-element JSON array.
func jsonValuePairAny(a, b interface{}) ([]byte, error) {
	return json.Marshal([2]interface{}{a, b})
}
