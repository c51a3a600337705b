// Copyright (c) 2025 The gobtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script implements the Bitcoin script command stream: its
// varint-length-prefixed, PUSHDATA-aware codec, and evaluation of the
// canonical pay-to-pubkey-hash template.
package script

// Opcode is a single Bitcoin script operation code.
type Opcode byte

const (
	OP_0         Opcode = 0
	OP_PUSHDATA1 Opcode = 76
	OP_PUSHDATA2 Opcode = 77
	OP_PUSHDATA4 Opcode = 78
	OP_1NEGATE   Opcode = 79
	OP_1         Opcode = 81
	OP_2         Opcode = 82
	OP_3         Opcode = 83
	OP_4         Opcode = 84
	OP_5         Opcode = 85
	OP_6         Opcode = 86
	OP_7         Opcode = 87
	OP_8         Opcode = 88
	OP_9         Opcode = 89
	OP_10        Opcode = 90
	OP_11        Opcode = 91
	OP_12        Opcode = 92
	OP_13        Opcode = 93
	OP_14        Opcode = 94
	OP_15        Opcode = 95
	OP_16        Opcode = 96

	OP_NOP    Opcode = 97
	OP_IF     Opcode = 99
	OP_NOTIF  Opcode = 100
	OP_ELSE   Opcode = 103
	OP_ENDIF  Opcode = 104
	OP_VERIFY Opcode = 105
	OP_RETURN Opcode = 106

	OP_TOALTSTACK   Opcode = 107
	OP_FROMALTSTACK Opcode = 108
	OP_2DROP        Opcode = 109
	OP_2DUP         Opcode = 110
	OP_3DUP         Opcode = 111
	OP_2OVER        Opcode = 112
	OP_2ROT         Opcode = 113
	OP_2SWAP        Opcode = 114
	OP_IFDUP        Opcode = 115
	OP_DEPTH        Opcode = 116
	OP_DROP         Opcode = 117
	OP_DUP          Opcode = 118
	OP_NIP          Opcode = 119
	OP_OVER         Opcode = 120
	OP_PICK         Opcode = 121
	OP_ROLL         Opcode = 122
	OP_ROT          Opcode = 123
	OP_SWAP         Opcode = 124
	OP_TUCK         Opcode = 125

	OP_SIZE Opcode = 130

	OP_EQUAL       Opcode = 135
	OP_EQUALVERIFY Opcode = 136

	OP_1ADD      Opcode = 139
	OP_1SUB      Opcode = 140
	OP_NEGATE    Opcode = 143
	OP_ABS       Opcode = 144
	OP_NOT       Opcode = 145
	OP_0NOTEQUAL Opcode = 146
	OP_ADD       Opcode = 147
	OP_SUB       Opcode = 148

	OP_BOOLAND            Opcode = 154
	OP_BOOLOR             Opcode = 155
	OP_NUMEQUAL           Opcode = 156
	OP_NUMEQUALVERIFY     Opcode = 157
	OP_NUMNOTEQUAL        Opcode = 158
	OP_LESSTHAN           Opcode = 159
	OP_GREATERTHAN        Opcode = 160
	OP_LESSTHANOREQUAL    Opcode = 161
	OP_GREATERTHANOREQUAL Opcode = 162
	OP_MIN                Opcode = 163
	OP_MAX                Opcode = 164
	OP_WITHIN             Opcode = 165

	OP_RIPEMD160           Opcode = 166
	OP_SHA1                Opcode = 167
	OP_SHA256              Opcode = 168
	OP_HASH160             Opcode = 169
	OP_HASH256             Opcode = 170
	OP_CODESEPARATOR       Opcode = 171
	OP_CHECKSIG            Opcode = 172
	OP_CHECKSIGVERIFY      Opcode = 173
	OP_CHECKMULTISIG       Opcode = 174
	OP_CHECKMULTISIGVERIFY Opcode = 175

	OP_NOP1                Opcode = 176
	OP_CHECKLOCKTIMEVERIFY Opcode = 177 // BIP65
	OP_CHECKSEQUENCEVERIFY Opcode = 178 // BIP112
	OP_NOP4                Opcode = 179
	OP_NOP5                Opcode = 180
	OP_NOP6                Opcode = 181
	OP_NOP7                Opcode = 182
	OP_NOP8                Opcode = 183
	OP_NOP9                Opcode = 184
	OP_NOP10               Opcode = 185
)

// opcodeNames gives the mnemonic for opcodes a P2PKH script and
// disassembly need to recognize. Values 1-75 are not opcodes: they signal
// a push of that many bytes and are handled directly by the codec.
var opcodeNames = map[Opcode]string{
	OP_0: "OP_0", OP_PUSHDATA1: "OP_PUSHDATA1", OP_PUSHDATA2: "OP_PUSHDATA2",
	OP_PUSHDATA4: "OP_PUSHDATA4", OP_1NEGATE: "OP_1NEGATE",
	OP_1: "OP_1", OP_2: "OP_2", OP_3: "OP_3", OP_4: "OP_4", OP_5: "OP_5",
	OP_6: "OP_6", OP_7: "OP_7", OP_8: "OP_8", OP_9: "OP_9", OP_10: "OP_10",
	OP_11: "OP_11", OP_12: "OP_12", OP_13: "OP_13", OP_14: "OP_14", OP_15: "OP_15", OP_16: "OP_16",
	OP_NOP: "OP_NOP", OP_IF: "OP_IF", OP_NOTIF: "OP_NOTIF", OP_ELSE: "OP_ELSE",
	OP_ENDIF: "OP_ENDIF", OP_VERIFY: "OP_VERIFY", OP_RETURN: "OP_RETURN",
	OP_TOALTSTACK: "OP_TOALTSTACK", OP_FROMALTSTACK: "OP_FROMALTSTACK",
	OP_2DROP: "OP_2DROP", OP_2DUP: "OP_2DUP", OP_3DUP: "OP_3DUP", OP_2OVER: "OP_2OVER",
	OP_2ROT: "OP_2ROT", OP_2SWAP: "OP_2SWAP", OP_IFDUP: "OP_IFDUP", OP_DEPTH: "OP_DEPTH",
	OP_DROP: "OP_DROP", OP_DUP: "OP_DUP", OP_NIP: "OP_NIP", OP_OVER: "OP_OVER",
	OP_PICK: "OP_PICK", OP_ROLL: "OP_ROLL", OP_ROT: "OP_ROT", OP_SWAP: "OP_SWAP", OP_TUCK: "OP_TUCK",
	OP_SIZE: "OP_SIZE", OP_EQUAL: "OP_EQUAL", OP_EQUALVERIFY: "OP_EQUALVERIFY",
	OP_1ADD: "OP_1ADD", OP_1SUB: "OP_1SUB", OP_NEGATE: "OP_NEGATE", OP_ABS: "OP_ABS",
	OP_NOT: "OP_NOT", OP_0NOTEQUAL: "OP_0NOTEQUAL", OP_ADD: "OP_ADD", OP_SUB: "OP_SUB",
	OP_BOOLAND: "OP_BOOLAND", OP_BOOLOR: "OP_BOOLOR", OP_NUMEQUAL: "OP_NUMEQUAL",
	OP_NUMEQUALVERIFY: "OP_NUMEQUALVERIFY", OP_NUMNOTEQUAL: "OP_NUMNOTEQUAL",
	OP_LESSTHAN: "OP_LESSTHAN", OP_GREATERTHAN: "OP_GREATERTHAN",
	OP_LESSTHANOREQUAL: "OP_LESSTHANOREQUAL", OP_GREATERTHANOREQUAL: "OP_GREATERTHANOREQUAL",
	OP_MIN: "OP_MIN", OP_MAX: "OP_MAX", OP_WITHIN: "OP_WITHIN",
	OP_RIPEMD160: "OP_RIPEMD160", OP_SHA1: "OP_SHA1", OP_SHA256: "OP_SHA256",
	OP_HASH160: "OP_HASH160", OP_HASH256: "OP_HASH256", OP_CODESEPARATOR: "OP_CODESEPARATOR",
	OP_CHECKSIG: "OP_CHECKSIG", OP_CHECKSIGVERIFY: "OP_CHECKSIGVERIFY",
	OP_CHECKMULTISIG: "OP_CHECKMULTISIG", OP_CHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",
	OP_NOP1: "OP_NOP1", OP_CHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
	OP_CHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY", OP_NOP4: "OP_NOP4", OP_NOP5: "OP_NOP5",
	OP_NOP6: "OP_NOP6", OP_NOP7: "OP_NOP7", OP_NOP8: "OP_NOP8", OP_NOP9: "OP_NOP9", OP_NOP10: "OP_NOP10",
}
