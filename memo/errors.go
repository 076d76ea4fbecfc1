package memo

import "errors"

// The protocol error taxonomy is flat and synchronous. Every validation
// failure aborts the enclosing batch, so callers only ever branch with
// errors.Is against these sentinels.

// Framing errors.
var (
	ErrMemoRequired           = errors.New("memo required: batch must carry a memo instruction at the mandated position")
	ErrMemoTooShort           = errors.New("memo too short: minimum 69 bytes")
	ErrMemoTooLong            = errors.New("memo too long: maximum 800 bytes")
	ErrInvalidMemoFormat      = errors.New("invalid memo format: expected Base64 text over a framed envelope")
	ErrUnsupportedMemoVersion = errors.New("unsupported memo envelope version")
	ErrPayloadTooLong         = errors.New("payload too long: maximum 787 bytes")
)

// Typed-payload shape errors.
var (
	ErrUnsupportedProfileDataVersion = errors.New("unsupported profile data version")
	ErrInvalidProfileDataFormat      = errors.New("invalid profile data format in payload")
	ErrUnsupportedGroupDataVersion   = errors.New("unsupported group data version")
	ErrInvalidGroupDataFormat        = errors.New("invalid group data format in payload")
	ErrUnsupportedProjectDataVersion = errors.New("unsupported project data version")
	ErrInvalidProjectDataFormat      = errors.New("invalid project data format in payload")
	ErrUnsupportedBlogDataVersion    = errors.New("unsupported blog data version")
	ErrInvalidBlogDataFormat         = errors.New("invalid blog data format in payload")
	ErrUnsupportedPostDataVersion    = errors.New("unsupported post data version")
	ErrInvalidPostDataFormat         = errors.New("invalid post data format in payload")

	ErrInvalidCategory        = errors.New("invalid category for this module")
	ErrInvalidCategoryLength  = errors.New("invalid category byte length")
	ErrInvalidOperation       = errors.New("invalid operation for this instruction")
	ErrInvalidOperationLength = errors.New("invalid operation byte length")
)

// Identity errors. The subject pubkey travels inside the payload as a base58
// string and must re-parse to the runtime-observed signer.
var (
	ErrInvalidUserPubkeyFormat    = errors.New("invalid user pubkey format in payload")
	ErrUserPubkeyMismatch         = errors.New("user pubkey does not match the transaction signer")
	ErrInvalidCreatorPubkeyFormat = errors.New("invalid creator pubkey format in payload")
	ErrCreatorPubkeyMismatch      = errors.New("creator pubkey does not match the transaction signer")
	ErrInvalidBurnerPubkeyFormat  = errors.New("invalid burner pubkey format in payload")
	ErrBurnerPubkeyMismatch       = errors.New("burner pubkey does not match the transaction signer")
	ErrInvalidMinterPubkeyFormat  = errors.New("invalid minter pubkey format in payload")
	ErrMinterPubkeyMismatch       = errors.New("minter pubkey does not match the transaction signer")
	ErrInvalidSenderPubkeyFormat  = errors.New("invalid sender pubkey format in payload")
	ErrSenderPubkeyMismatch       = errors.New("sender pubkey does not match the transaction signer")
	ErrInvalidReceiverFormat      = errors.New("invalid receiver pubkey format in payload")
)

// Entity scoping errors.
var (
	ErrGroupIdMismatch   = errors.New("group id in payload does not match instruction parameter")
	ErrProjectIdMismatch = errors.New("project id in payload does not match instruction parameter")
	ErrPostIdMismatch    = errors.New("post id in payload does not match instruction parameter")
)

// Amount reconciliation errors.
var (
	ErrBurnAmountMismatch    = errors.New("envelope amount does not match the instruction burn amount")
	ErrInvalidMintMemoFormat = errors.New("mint memo must declare a zero amount")
)

// Field-shape errors.
var (
	ErrInvalidUsername     = errors.New("invalid username: must be 1-32 bytes")
	ErrInvalidProfileImage = errors.New("invalid profile image: at most 256 bytes")
	ErrInvalidAboutMe      = errors.New("invalid about_me: at most 128 bytes")

	ErrInvalidGroupName        = errors.New("invalid group name: must be 1-64 bytes")
	ErrInvalidGroupDescription = errors.New("invalid group description: at most 128 bytes")
	ErrInvalidGroupImage       = errors.New("invalid group image: at most 256 bytes")
	ErrInvalidMemoInterval     = errors.New("invalid memo interval: must be within 0-86400 seconds")

	ErrInvalidProjectName        = errors.New("invalid project name: must be 1-64 bytes")
	ErrInvalidProjectDescription = errors.New("invalid project description: at most 256 bytes")
	ErrInvalidProjectImage       = errors.New("invalid project image: at most 256 bytes")
	ErrInvalidProjectWebsite     = errors.New("invalid project website: at most 128 bytes")

	ErrInvalidBlogName        = errors.New("invalid blog name: must be 1-64 bytes")
	ErrInvalidBlogDescription = errors.New("invalid blog description: at most 256 bytes")
	ErrInvalidBlogImage       = errors.New("invalid blog image: at most 256 bytes")

	ErrInvalidPostTitle   = errors.New("invalid post title: must be 1-128 bytes")
	ErrInvalidPostContent = errors.New("invalid post content: must be 1-512 bytes")
	ErrInvalidPostImage   = errors.New("invalid post image: at most 256 bytes")

	ErrInvalidTag  = errors.New("invalid tag: must be 1-32 bytes")
	ErrTooManyTags = errors.New("too many tags: maximum 4")

	ErrEmptyMessage   = errors.New("empty message")
	ErrMessageTooLong = errors.New("message too long")

	ErrInvalidReplySignatureFormat = errors.New("invalid reply signature: must base58-decode to 64 bytes")
)
