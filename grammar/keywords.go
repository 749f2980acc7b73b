package grammar

// reservedWords is the exact set from spec.md's Glossary. A
// type-reference or identifier token whose text is one of these must
// not be accepted as a reference; it almost always introduces a
// following production instead (END, SEQUENCE, ...), per spec.md
// §4.3's reserved-word guard.
var reservedWords = map[string]bool{
	"ABSENT": true, "ENCODED": true, "INTEGER": true, "RELATIVE-OID": true,
	"ABSTRACT-SYNTAX": true, "END": true, "INTERSECTION": true, "SEQUENCE": true,
	"ALL": true, "ENUMERATED": true, "ISO646String": true, "SET": true,
	"APPLICATION": true, "EXCEPT": true, "MAX": true, "SIZE": true,
	"AUTOMATIC": true, "EXPLICIT": true, "MIN": true, "STRING": true,
	"BEGIN": true, "EXPORTS": true, "MINUS-INFINITY": true, "SYNTAX": true,
	"BIT": true, "EXTENSIBILITY": true, "NULL": true, "T61String": true,
	"BMPString": true, "EXTERNAL": true, "NumericString": true, "TAGS": true,
	"BOOLEAN": true, "FALSE": true, "OBJECT": true, "TeletexString": true,
	"BY": true, "FROM": true, "ObjectDescriptor": true, "TRUE": true,
	"CHARACTER": true, "GeneralizedTime": true, "OCTET": true, "TYPE-IDENTIFIER": true,
	"CHOICE": true, "GeneralString": true, "OF": true, "UNION": true,
	"CLASS": true, "GraphicString": true, "OPTIONAL": true, "UNIQUE": true,
	"COMPONENT": true, "IA5String": true, "PATTERN": true, "UNIVERSAL": true,
	"COMPONENTS": true, "IDENTIFIER": true, "PDV": true, "UniversalString": true,
	"PLUS-INFINITY": true, "UTCTime": true,
	"CONSTRAINED": true, "IMPLICIT": true, "PRESENT": true, "UTF8String": true,
	"CONTAINING": true, "IMPLIED": true, "PrintableString": true, "VideotexString": true,
	"DEFAULT": true, "IMPORTS": true, "PRIVATE": true, "VisibleString": true,
	"DEFINITIONS": true, "INCLUDES": true, "REAL": true, "WITH": true,
	"EMBEDDED": true, "INSTANCE": true, "ANY": true, "DEFINED": true,
}

func isReserved(text string) bool {
	return reservedWords[text]
}
