package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/noble"
)

// StyleFromPalette returns a function that maps chroma token types to noble styles
// based on the provided palette colors.
func StyleFromPalette(p noble.Palette) StyleFunc {
	return func(tt chromalib.TokenType) noble.Style {
		switch tt {
		// Type keywords (handled separately from other keywords)
		case chromalib.KeywordType:
			return noble.Style{Foreground: string(p.Type), Bold: true}

		// Constants are keywords in chroma but get their own color
		case chromalib.KeywordConstant, chromalib.NameConstant:
			return noble.Style{Foreground: string(p.Constant)}

		// Keywords
		case chromalib.Keyword, chromalib.KeywordDeclaration, chromalib.KeywordNamespace,
			chromalib.KeywordPseudo, chromalib.KeywordReserved:
			return noble.Style{Foreground: string(p.Keyword), Bold: true}

		// Comments
		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return noble.Style{Foreground: string(p.Comment)}

		// Strings
		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return noble.Style{Foreground: string(p.String)}

		// Numbers
		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
			return noble.Style{Foreground: string(p.Number)}

		// Word operators read as keywords in noble
		case chromalib.OperatorWord:
			return noble.Style{Foreground: string(p.Keyword), Bold: true}

		case chromalib.Operator:
			return noble.Style{Foreground: string(p.Operator)}

		// Function names
		case chromalib.NameFunction, chromalib.NameFunctionMagic:
			return noble.Style{Foreground: string(p.Function)}

		case chromalib.NameVariable, chromalib.NameVariableInstance:
			return noble.Style{Foreground: string(p.Variable)}

		case chromalib.NameProperty, chromalib.NameAttribute:
			return noble.Style{Foreground: string(p.Property)}

		// Punctuation
		case chromalib.Punctuation:
			return noble.Style{Foreground: string(p.Punctuation)}

		default:
			return noble.Style{}
		}
	}
}
