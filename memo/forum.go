package memo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

const (
	PostDataVersion = 1

	OperationCreatePost  = "create_post"
	OperationBurnForPost = "burn_for_post"
	OperationMintForPost = "mint_for_post"

	MaxPostTitleLength    = 128
	MaxPostContentLength  = 512
	MaxPostImageLength    = 256
	MaxReplyMessageLength = 512
)

// PostCreationData is the inner record for create_post.
type PostCreationData struct {
	Version   uint8
	Category  string
	Operation string
	Creator   string
	PostID    uint64
	Title     string
	Content   string
	Image     string
}

func DecodePostCreation(payload []byte) (*PostCreationData, error) {
	var d PostCreationData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidPostDataFormat
	}
	return &d, nil
}

func (d *PostCreationData) Validate(creator solana.PublicKey, expectedPostID uint64) error {
	if d.Version != PostDataVersion {
		return ErrUnsupportedPostDataVersion
	}
	err := checkLiteral(d.Category, CategoryForum, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationCreatePost, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Creator, creator, ErrInvalidCreatorPubkeyFormat, ErrCreatorPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.PostID != expectedPostID {
		return ErrPostIdMismatch
	}
	if len(d.Title) == 0 || len(d.Title) > MaxPostTitleLength {
		return ErrInvalidPostTitle
	}
	if len(d.Content) == 0 || len(d.Content) > MaxPostContentLength {
		return ErrInvalidPostContent
	}
	if len(d.Image) > MaxPostImageLength {
		return ErrInvalidPostImage
	}
	return nil
}

// PostBurnData is the inner record for burn_for_post.
type PostBurnData struct {
	Version   uint8
	Category  string
	Operation string
	User      string
	PostID    uint64
	Message   string
}

func DecodePostBurn(payload []byte) (*PostBurnData, error) {
	var d PostBurnData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidPostDataFormat
	}
	return &d, nil
}

func (d *PostBurnData) Validate(user solana.PublicKey, expectedPostID uint64) error {
	if d.Version != PostDataVersion {
		return ErrUnsupportedPostDataVersion
	}
	err := checkLiteral(d.Category, CategoryForum, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationBurnForPost, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.User, user, ErrInvalidUserPubkeyFormat, ErrUserPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.PostID != expectedPostID {
		return ErrPostIdMismatch
	}
	if len(d.Message) > MaxReplyMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// PostMintData is the inner record for mint_for_post.
type PostMintData struct {
	Version   uint8
	Category  string
	Operation string
	User      string
	PostID    uint64
	Message   string
}

func DecodePostMint(payload []byte) (*PostMintData, error) {
	var d PostMintData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidPostDataFormat
	}
	return &d, nil
}

func (d *PostMintData) Validate(user solana.PublicKey, expectedPostID uint64) error {
	if d.Version != PostDataVersion {
		return ErrUnsupportedPostDataVersion
	}
	err := checkLiteral(d.Category, CategoryForum, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationMintForPost, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.User, user, ErrInvalidUserPubkeyFormat, ErrUserPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.PostID != expectedPostID {
		return ErrPostIdMismatch
	}
	if len(d.Message) > MaxReplyMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
