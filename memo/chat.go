package memo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"
)

const (
	GroupDataVersion = 1

	OperationCreateGroup  = "create_group"
	OperationSendMessage  = "send_message"
	OperationBurnForGroup = "burn_for_group"

	MaxGroupNameLength        = 64
	MaxGroupDescriptionLength = 128
	MaxGroupImageLength       = 256
	MaxChatMessageLength      = 512

	// MaxMemoInterval caps a group's configurable rate limit at one day.
	MaxMemoInterval = 86400

	// DefaultMemoInterval applies when a creation memo omits the interval.
	DefaultMemoInterval = 60
)

// GroupCreationData is the inner record for create_group.
type GroupCreationData struct {
	Version         uint8
	Category        string
	Operation       string
	Creator         string
	GroupID         uint64
	Name            string
	Description     string
	Image           string
	Tags            []string
	MinMemoInterval *int64
}

func DecodeGroupCreation(payload []byte) (*GroupCreationData, error) {
	var d GroupCreationData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidGroupDataFormat
	}
	return &d, nil
}

func (d *GroupCreationData) Validate(creator solana.PublicKey, expectedGroupID uint64) error {
	if d.Version != GroupDataVersion {
		return ErrUnsupportedGroupDataVersion
	}
	err := checkLiteral(d.Category, CategoryChat, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationCreateGroup, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Creator, creator, ErrInvalidCreatorPubkeyFormat, ErrCreatorPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.GroupID != expectedGroupID {
		return ErrGroupIdMismatch
	}
	if len(d.Name) == 0 || len(d.Name) > MaxGroupNameLength {
		return ErrInvalidGroupName
	}
	if len(d.Description) > MaxGroupDescriptionLength {
		return ErrInvalidGroupDescription
	}
	if len(d.Image) > MaxGroupImageLength {
		return ErrInvalidGroupImage
	}
	err = validateTags(d.Tags)
	if err != nil {
		return err
	}
	if d.MinMemoInterval != nil && (*d.MinMemoInterval < 0 || *d.MinMemoInterval > MaxMemoInterval) {
		return ErrInvalidMemoInterval
	}
	return nil
}

// GroupMessageData is the inner record for send_message.
type GroupMessageData struct {
	Version          uint8
	Category         string
	Operation        string
	Sender           string
	GroupID          uint64
	Message          string
	Receiver         *string
	ReplyToSignature *string
}

func DecodeGroupMessage(payload []byte) (*GroupMessageData, error) {
	var d GroupMessageData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidGroupDataFormat
	}
	return &d, nil
}

func (d *GroupMessageData) Validate(sender solana.PublicKey, expectedGroupID uint64) error {
	if d.Version != GroupDataVersion {
		return ErrUnsupportedGroupDataVersion
	}
	err := checkLiteral(d.Category, CategoryChat, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationSendMessage, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Sender, sender, ErrInvalidSenderPubkeyFormat, ErrSenderPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.GroupID != expectedGroupID {
		return ErrGroupIdMismatch
	}
	if len(d.Message) == 0 {
		return ErrEmptyMessage
	}
	if len(d.Message) > MaxChatMessageLength {
		return ErrMessageTooLong
	}
	// An empty receiver or reply signature string means absent.
	if d.Receiver != nil && *d.Receiver != "" {
		_, err = solana.PublicKeyFromBase58(*d.Receiver)
		if err != nil {
			return ErrInvalidReceiverFormat
		}
	}
	if d.ReplyToSignature != nil && *d.ReplyToSignature != "" {
		sig, err := base58.Decode(*d.ReplyToSignature)
		if err != nil || len(sig) != 64 {
			return ErrInvalidReplySignatureFormat
		}
	}
	return nil
}

// GroupBurnData is the inner record for burn_for_group.
type GroupBurnData struct {
	Version   uint8
	Category  string
	Operation string
	Burner    string
	GroupID   uint64
	Message   string
}

func DecodeGroupBurn(payload []byte) (*GroupBurnData, error) {
	var d GroupBurnData
	err := borsh.Deserialize(&d, payload)
	if err != nil {
		return nil, ErrInvalidGroupDataFormat
	}
	return &d, nil
}

func (d *GroupBurnData) Validate(burner solana.PublicKey, expectedGroupID uint64) error {
	if d.Version != GroupDataVersion {
		return ErrUnsupportedGroupDataVersion
	}
	err := checkLiteral(d.Category, CategoryChat, ErrInvalidCategory, ErrInvalidCategoryLength)
	if err != nil {
		return err
	}
	err = checkLiteral(d.Operation, OperationBurnForGroup, ErrInvalidOperation, ErrInvalidOperationLength)
	if err != nil {
		return err
	}
	err = checkPubkey(d.Burner, burner, ErrInvalidBurnerPubkeyFormat, ErrBurnerPubkeyMismatch)
	if err != nil {
		return err
	}
	if d.GroupID != expectedGroupID {
		return ErrGroupIdMismatch
	}
	if len(d.Message) > MaxChatMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) > MaxTagsCount {
		return ErrTooManyTags
	}
	for _, tag := range tags {
		if len(tag) == 0 || len(tag) > MaxTagLength {
			return ErrInvalidTag
		}
	}
	return nil
}
