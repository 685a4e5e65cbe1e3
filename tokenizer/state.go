package tokenizer

// state is an exhaustive tagged variant of tokenizer states, dispatched
// through a compile-time-sized array indexed by ordinal (spec.md §9:
// "use an exhaustive tagged variant of states with a compile-time-checked
// dispatch table", replacing the teacher's stringly-typed
// `self.state.lower() + "_state"` method lookup).
type state int

const (
	stateData state = iota
	stateRCDATA
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateRCDATALessThan
	stateRCDATAEndTagOpen
	stateRCDATAEndTagName
	stateSelfClosingTag
	statePreAttrName
	stateAttrName
	statePostAttrName
	statePreAttrValue
	stateAttrValueDQuoted
	stateAttrValueSQuoted
	stateAttrValueUnquoted
	statePostAttrValueQuoted
	stateMarkupOpen
	stateCommentStart
	stateCommentStartDash
	stateComment
	stateCommentLessThan
	stateCommentLessThanBang
	stateCommentLessThanBangDash
	stateCommentLessThanBangDDash
	stateCommentEndDash
	stateCommentEnd
	stateCommentEndBang
	stateDoctype
	statePreDoctypeName
	stateDoctypeName
	statePostDoctypeName
	stateBogusDoctype
	stateBogusComment
	stateCharRef

	numStates
)

var stateNames = [numStates]string{
	stateData:                     "DATA",
	stateRCDATA:                   "RCDATA",
	stateTagOpen:                  "TAG_OPEN",
	stateEndTagOpen:               "END_TAG_OPEN",
	stateTagName:                  "TAG_NAME",
	stateRCDATALessThan:           "RCDATA_LESSTHAN",
	stateRCDATAEndTagOpen:         "RCDATA_END_TAG_OPEN",
	stateRCDATAEndTagName:         "RCDATA_END_TAG_NAME",
	stateSelfClosingTag:           "SELFCLOSING_TAG",
	statePreAttrName:              "PRE_ATTR_NAME",
	stateAttrName:                 "ATTR_NAME",
	statePostAttrName:             "POST_ATTR_NAME",
	statePreAttrValue:             "PRE_ATTR_VALUE",
	stateAttrValueDQuoted:         "ATTR_VALUE_DQUOTED",
	stateAttrValueSQuoted:         "ATTR_VALUE_SQUOTED",
	stateAttrValueUnquoted:        "ATTR_VALUE_UNQUOTED",
	statePostAttrValueQuoted:      "POST_ATTR_VALUE_QUOTED",
	stateMarkupOpen:               "MARKUP_OPEN",
	stateCommentStart:             "COMMENT_START",
	stateCommentStartDash:         "COMMENT_START_DASH",
	stateComment:                  "COMMENT",
	stateCommentLessThan:          "COMMENT_LESSTHAN",
	stateCommentLessThanBang:      "COMMENT_LESSTHAN_BANG",
	stateCommentLessThanBangDash:  "COMMENT_LESSTHAN_BANG_DASH",
	stateCommentLessThanBangDDash: "COMMENT_LESSTHAN_BANG_DDASH",
	stateCommentEndDash:           "COMMENT_END_DASH",
	stateCommentEnd:               "COMMENT_END",
	stateCommentEndBang:           "COMMENT_END_BANG",
	stateDoctype:                  "DOCTYPE",
	statePreDoctypeName:           "PRE_DOCTYPE_NAME",
	stateDoctypeName:              "DOCTYPE_NAME",
	statePostDoctypeName:          "POST_DOCTYPE_NAME",
	stateBogusDoctype:             "BOGUS_DOCTYPE",
	stateBogusComment:             "BOGUS_COMMENT",
	stateCharRef:                  "CHAR_REF",
}

func (s state) String() string {
	if s < 0 || s >= numStates {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// contentModel maps the feedback-field names the tree builder attaches
// to emitted start tags (spec.md §4.1's "new_state" and §4.2's
// parse_raw_text("RCDATA"|"RAWTEXT")) onto tokenizer states.
//
// RAWTEXT and RCDATA share one implementation here: the only behavioral
// difference between them in the full HTML5 algorithm is character
// reference recognition inside the element content, and this tokenizer
// doesn't decode references either way (spec.md §1 non-goal) — so, like
// original_source/dash/html_parser/tokenizer.py (which never defines a
// rawtext_state at all), a RAWTEXT request is served by the RCDATA
// states.
func contentModel(name string) (state, bool) {
	switch name {
	case "RCDATA", "RAWTEXT":
		return stateRCDATA, true
	case "DATA":
		return stateData, true
	default:
		return stateData, false
	}
}
