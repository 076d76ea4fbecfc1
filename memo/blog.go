package memo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

const (
	BlogDataVersion = 1

	OperationCreateBlog  = "create_blog"
	OperationUpdateBlog  = "update_blog"
	OperationBurnForBlog = "burn_for_blog"
	OperationMintForBlog = "mint_for_blog"

	MaxBlogNameLength        = 64
	MaxBlogDescriptionLength = 256
	MaxBlogImageLength       = 256
	MaxBlogMessageLength     = 696
)

// BlogCreationData is the inner record for create_blog. Blogs are scoped by
// the creator pubkey, one per user.
type BlogCreationData struct {
	Version     uint8
	Category    string
	Operation   string
	Creator     string
	Name        string
	Description string
	Image       string
}

func DecodeBlogCreation(payload []byte) (*BlogCreationData, error) {
	var d BlogCreationData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidBlogDataFormat
	}
	return &d, nil
}

func (d *BlogCreationData) Validate(creator solana.PublicKey) error {
	if d.Version != BlogDataVersion {
		return ErrUnsupportedBlogDataVersion
	}
	err := checkLiteral(d.Category, CategoryBlog, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationCreateBlog, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Creator, creator, ErrInvalidCreatorPubkeyFormat, ErrCreatorPubkeyMismatch)
	if err != nil {
		return err
	}
	if len(d.Name) == 0 || len(d.Name) > MaxBlogNameLength {
		return ErrInvalidBlogName
	}
	if len(d.Description) > MaxBlogDescriptionLength {
		return ErrInvalidBlogDescription
	}
	if len(d.Image) > MaxBlogImageLength {
		return ErrInvalidBlogImage
	}
	return nil
}

// BlogUpdateData carries optional overrides for the mutable blog fields.
type BlogUpdateData struct {
	Version     uint8
	Category    string
	Operation   string
	Creator     string
	Name        *string
	Description *string
	Image       *string
}

func DecodeBlogUpdate(payload []byte) (*BlogUpdateData, error) {
	var d BlogUpdateData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidBlogDataFormat
	}
	return &d, nil
}

func (d *BlogUpdateData) Validate(creator solana.PublicKey) error {
	if d.Version != BlogDataVersion {
		return ErrUnsupportedBlogDataVersion
	}
	err := checkLiteral(d.Category, CategoryBlog, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationUpdateBlog, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Creator, creator, ErrInvalidCreatorPubkeyFormat, ErrCreatorPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.Name != nil && (len(*d.Name) == 0 || len(*d.Name) > MaxBlogNameLength) {
		return ErrInvalidBlogName
	}
	if d.Description != nil && len(*d.Description) > MaxBlogDescriptionLength {
		return ErrInvalidBlogDescription
	}
	if d.Image != nil && len(*d.Image) > MaxBlogImageLength {
		return ErrInvalidBlogImage
	}
	return nil
}

// BlogBurnData is the inner record for burn_for_blog.
type BlogBurnData struct {
	Version   uint8
	Category  string
	Operation string
	Burner    string
	Message   string
}

func DecodeBlogBurn(payload []byte) (*BlogBurnData, error) {
	var d BlogBurnData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidBlogDataFormat
	}
	return &d, nil
}

func (d *BlogBurnData) Validate(burner solana.PublicKey) error {
	if d.Version != BlogDataVersion {
		return ErrUnsupportedBlogDataVersion
	}
	err := checkLiteral(d.Category, CategoryBlog, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationBurnForBlog, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Burner, burner, ErrInvalidBurnerPubkeyFormat, ErrBurnerPubkeyMismatch)
	if err != nil {
		return err
	}
	if len(d.Message) > MaxBlogMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// BlogMintData is the inner record for mint_for_blog, the blog domain's
// mint-bearing operation.
type BlogMintData struct {
	Version   uint8
	Category  string
	Operation string
	Minter    string
	Message   string
}

func DecodeBlogMint(payload []byte) (*BlogMintData, error) {
	var d BlogMintData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidBlogDataFormat
	}
	return &d, nil
}

func (d *BlogMintData) Validate(minter solana.PublicKey) error {
	if d.Version != BlogDataVersion {
		return ErrUnsupportedBlogDataVersion
	}
	err := checkLiteral(d.Category, CategoryBlog, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationMintForBlog, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Minter, minter, ErrInvalidMinterPubkeyFormat, ErrMinterPubkeyMismatch)
	if err != nil {
		return err
	}
	if len(d.Message) > MaxBlogMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
