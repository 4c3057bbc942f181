package dynamicfee

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the dynamic fee program address.
var ProgramID = solanago.MustPublicKeyFromBase58("CFwonq11rTgKYt33mn32QDofnvuH6N7mZZz7xXztvHZu")

// Anchor account discriminators (sha256("account:<Name>")[:8]).
var (
	DynamicFeeConfigDiscriminator = [8]byte{244, 226, 88, 82, 14, 59, 246, 220}
	DynamicFeeStateDiscriminator  = [8]byte{58, 9, 146, 65, 198, 228, 131, 225}
)

const accountDiscriminatorSize = 8
