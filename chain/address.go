package chain

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// Module ids of the deployed program family. Entity record addresses are
// program-derived from these with the seeds below, so every record is
// reachable deterministically from its scoping key.
var (
	BurnProgramID    = solana.MustPublicKeyFromBase58("FEjJ9KKJETocmaStfsFteFrktPchDLAVNTMeTvndoxaP")
	MintProgramID    = solana.MustPublicKeyFromBase58("A31a17bhgQyRQygeZa1SybytjbCdjMpu6oPr9M3iQWzy")
	ProfileProgramID = solana.MustPublicKeyFromBase58("BwQTxuShrwJR15U6Utdfmfr4kZ18VT6FA1fcp58sT8US")
	ChatProgramID    = solana.MustPublicKeyFromBase58("54ky4LNnRsbYioDSBKNrc5hG8HoDyZ6yhf8TuncxTBRF")
	ProjectProgramID = solana.MustPublicKeyFromBase58("ENVapgjzzMjbRhLJ279yNsSgaQtDYYVgWq98j54yYnyx")
	BlogProgramID    = solana.MustPublicKeyFromBase58("HPvqPUneCLwb8YYoYTrWmy6o7viRKsnLTgxwkg7CCpfB")
	ForumProgramID   = solana.MustPublicKeyFromBase58("9kwS5nSidmoHq84TyNzqFrtD29odp4sdRxm97tCbdpbS")
)

func deriveAddress(program solana.PublicKey, seeds ...[]byte) solana.PublicKey {
	addr, _, err := solana.FindProgramAddress(seeds, program)
	if err != nil {
		panic(err)
	}
	return addr
}

func uint64Seed(id uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], id)
	return b[:]
}

func ProfileAddress(user solana.PublicKey) solana.PublicKey {
	return deriveAddress(ProfileProgramID, []byte("profile"), user.Bytes())
}

func ChatGroupAddress(groupID uint64) solana.PublicKey {
	return deriveAddress(ChatProgramID, []byte("chat_group"), uint64Seed(groupID))
}

func ProjectAddress(projectID uint64) solana.PublicKey {
	return deriveAddress(ProjectProgramID, []byte("project"), uint64Seed(projectID))
}

func BlogAddress(creator solana.PublicKey) solana.PublicKey {
	return deriveAddress(BlogProgramID, []byte("blog"), creator.Bytes())
}

func PostAddress(postID uint64) solana.PublicKey {
	return deriveAddress(ForumProgramID, []byte("post"), uint64Seed(postID))
}

func CounterAddress(program solana.PublicKey) solana.PublicKey {
	return deriveAddress(program, []byte("global_counter"))
}

func LeaderboardAddress(program solana.PublicKey) solana.PublicKey {
	return deriveAddress(program, []byte("burn_leaderboard"))
}

func MintAuthorityAddress() solana.PublicKey {
	return deriveAddress(MintProgramID, []byte("mint_authority"))
}

func UserBurnStatsAddress(user solana.PublicKey) solana.PublicKey {
	return deriveAddress(BurnProgramID, []byte("user_global_burn_stats"), user.Bytes())
}
