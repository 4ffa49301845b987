package mocks

// Valid bech32 addresses with the juno prefix, used across the tests.
const (
	AddrAlice = "juno1qyqszqgpqyqszqgpqyqszqgpqyqszqgpypz92q"
	AddrBob   = "juno1qgpqyqszqgpqyqszqgpqyqszqgpqyqsz49yqpk"
	AddrCarol = "juno1qvpsxqcrqvpsxqcrqvpsxqcrqvpsxqcr549pth"

	AddrMarketplace  = "juno1qszqgpqyqszqgpqyqszqgpqyqszqgpqy59zyvt"
	AddrCollection   = "juno1q5zs2pg9q5zs2pg9q5zs2pg9q5zs2pg944r9x2"
	AddrMinter       = "juno1qcrqvpsxqcrqvpsxqcrqvpsxqcrqvpsxy39qdu"
	AddrPaymentToken = "juno1pyysjzgfpyysjzgfpyysjzgfpyysjzgfpyysjzgfpyysjzgfpyysqj8j0v"
)
