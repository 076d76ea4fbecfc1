package memo

import (
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"
)

func TestProfileCreationValidate(t *testing.T) {
	require := require.New(t)
	user := solana.NewWallet().PublicKey()

	data := &ProfileCreationData{
		Version:   ProfileDataVersion,
		Category:  CategoryProfile,
		Operation: OperationCreateProfile,
		User:      user.String(),
		Username:  "xen",
	}
	raw, err := borsh.Serialize(*data)
	require.Nil(err)
	decoded, err := DecodeProfileCreation(raw)
	require.Nil(err)
	require.Nil(decoded.Validate(user))

	decoded.Version = 2
	require.ErrorIs(decoded.Validate(user), ErrUnsupportedProfileDataVersion)
	decoded.Version = ProfileDataVersion

	decoded.Category = "profilX"
	require.ErrorIs(decoded.Validate(user), ErrInvalidCategory)
	decoded.Category = "profiles"
	require.ErrorIs(decoded.Validate(user), ErrInvalidCategoryLength)
	decoded.Category = CategoryProfile

	decoded.Operation = OperationUpdateProfile
	require.ErrorIs(decoded.Validate(user), ErrInvalidOperation)
	decoded.Operation = OperationCreateProfile

	require.ErrorIs(decoded.Validate(solana.NewWallet().PublicKey()), ErrUserPubkeyMismatch)
	decoded.User = "not-a-pubkey"
	require.ErrorIs(decoded.Validate(user), ErrInvalidUserPubkeyFormat)
	decoded.User = user.String()

	decoded.Username = ""
	require.ErrorIs(decoded.Validate(user), ErrInvalidUsername)
	decoded.Username = strings.Repeat("x", MaxUsernameLength+1)
	require.ErrorIs(decoded.Validate(user), ErrInvalidUsername)
	decoded.Username = "xen"

	long := strings.Repeat("i", MaxProfileImageLength+1)
	decoded.Image = &long
	require.ErrorIs(decoded.Validate(user), ErrInvalidProfileImage)
}

func TestGroupCreationValidate(t *testing.T) {
	require := require.New(t)
	creator := solana.NewWallet().PublicKey()

	interval := int64(60)
	data := &GroupCreationData{
		Version:         GroupDataVersion,
		Category:        CategoryChat,
		Operation:       OperationCreateGroup,
		Creator:         creator.String(),
		GroupID:         7,
		Name:            "lounge",
		Tags:            []string{"go", "infra"},
		MinMemoInterval: &interval,
	}
	raw, err := borsh.Serialize(*data)
	require.Nil(err)
	decoded, err := DecodeGroupCreation(raw)
	require.Nil(err)
	require.Nil(decoded.Validate(creator, 7))

	require.ErrorIs(decoded.Validate(creator, 8), ErrGroupIdMismatch)

	decoded.Tags = []string{"a", "b", "c", "d", "e"}
	require.ErrorIs(decoded.Validate(creator, 7), ErrTooManyTags)
	decoded.Tags = []string{""}
	require.ErrorIs(decoded.Validate(creator, 7), ErrInvalidTag)
	decoded.Tags = nil

	bad := int64(MaxMemoInterval + 1)
	decoded.MinMemoInterval = &bad
	require.ErrorIs(decoded.Validate(creator, 7), ErrInvalidMemoInterval)
	neg := int64(-1)
	decoded.MinMemoInterval = &neg
	require.ErrorIs(decoded.Validate(creator, 7), ErrInvalidMemoInterval)
}

func TestGroupMessageValidate(t *testing.T) {
	require := require.New(t)
	sender := solana.NewWallet().PublicKey()

	receiver := solana.NewWallet().PublicKey().String()
	sig := base58.Encode(make([]byte, 64))
	data := &GroupMessageData{
		Version:          GroupDataVersion,
		Category:         CategoryChat,
		Operation:        OperationSendMessage,
		Sender:           sender.String(),
		GroupID:          7,
		Message:          "gm",
		Receiver:         &receiver,
		ReplyToSignature: &sig,
	}
	raw, err := borsh.Serialize(*data)
	require.Nil(err)
	decoded, err := DecodeGroupMessage(raw)
	require.Nil(err)
	require.Nil(decoded.Validate(sender, 7))

	short := base58.Encode(make([]byte, 63))
	decoded.ReplyToSignature = &short
	require.ErrorIs(decoded.Validate(sender, 7), ErrInvalidReplySignatureFormat)

	// empty optional strings mean absent
	empty := ""
	decoded.ReplyToSignature = &empty
	decoded.Receiver = &empty
	require.Nil(decoded.Validate(sender, 7))

	decoded.Message = ""
	require.ErrorIs(decoded.Validate(sender, 7), ErrEmptyMessage)
	decoded.Message = strings.Repeat("m", MaxChatMessageLength+1)
	require.ErrorIs(decoded.Validate(sender, 7), ErrMessageTooLong)
}

func TestProjectUpdateValidate(t *testing.T) {
	require := require.New(t)
	updater := solana.NewWallet().PublicKey()

	name := "renamed"
	data := &ProjectUpdateData{
		Version:   ProjectDataVersion,
		Category:  CategoryProject,
		Operation: OperationUpdateProject,
		Updater:   updater.String(),
		ProjectID: 0,
		Name:      &name,
	}
	raw, err := borsh.Serialize(*data)
	require.Nil(err)
	decoded, err := DecodeProjectUpdate(raw)
	require.Nil(err)
	require.Nil(decoded.Validate(updater, 0))
	require.Nil(decoded.Description)
	require.Equal(name, *decoded.Name)

	require.ErrorIs(decoded.Validate(updater, 1), ErrProjectIdMismatch)

	long := strings.Repeat("w", MaxProjectWebsiteLength+1)
	decoded.Website = &long
	require.ErrorIs(decoded.Validate(updater, 0), ErrInvalidProjectWebsite)
}

func TestPostCreationValidate(t *testing.T) {
	require := require.New(t)
	creator := solana.NewWallet().PublicKey()

	data := &PostCreationData{
		Version:   PostDataVersion,
		Category:  CategoryForum,
		Operation: OperationCreatePost,
		Creator:   creator.String(),
		PostID:    3,
		Title:     "hello",
		Content:   "first",
	}
	raw, err := borsh.Serialize(*data)
	require.Nil(err)
	decoded, err := DecodePostCreation(raw)
	require.Nil(err)
	require.Nil(decoded.Validate(creator, 3))

	decoded.Title = strings.Repeat("t", MaxPostTitleLength+1)
	require.ErrorIs(decoded.Validate(creator, 3), ErrInvalidPostTitle)
	decoded.Title = "hello"

	decoded.Content = ""
	require.ErrorIs(decoded.Validate(creator, 3), ErrInvalidPostContent)
}

func TestBlogMintValidate(t *testing.T) {
	require := require.New(t)
	minter := solana.NewWallet().PublicKey()

	data := &BlogMintData{
		Version:   BlogDataVersion,
		Category:  CategoryBlog,
		Operation: OperationMintForBlog,
		Minter:    minter.String(),
		Message:   "thanks for reading",
	}
	raw, err := borsh.Serialize(*data)
	require.Nil(err)
	decoded, err := DecodeBlogMint(raw)
	require.Nil(err)
	require.Nil(decoded.Validate(minter))
	require.ErrorIs(decoded.Validate(solana.NewWallet().PublicKey()), ErrMinterPubkeyMismatch)
}

func TestPayloadDecodeGarbage(t *testing.T) {
	require := require.New(t)

	_, err := DecodeProfileCreation([]byte{0x01, 0x02})
	require.ErrorIs(err, ErrInvalidProfileDataFormat)
	_, err = DecodeGroupCreation(nil)
	require.ErrorIs(err, ErrInvalidGroupDataFormat)
	_, err = DecodeProjectBurn([]byte{0xff})
	require.ErrorIs(err, ErrInvalidProjectDataFormat)
}
