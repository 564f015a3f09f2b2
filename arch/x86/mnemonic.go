package x86

// Mnemonic identifies the operation an instruction performs, independent of
// its operand forms or which opcode table entry produced it. Like Register,
// it is a small comparable value: equality is by canonical identity (the
// underlying int), and Name() is a pure, display-only function of that
// identity.
//
// The catalogue below is a representative subset of the AMD64 mnemonic
// space — the integer ISA, control flow, string operations, x87, MMX,
// 3DNow!, SSE1-4.2, AES-NI/CLMUL, BMI1/2, FMA, and the VEX-encoded
// AVX/AVX2 surface — rather than an exhaustive rendition of every
// encoding the AMD manual defines.
type Mnemonic int

const (
	MNone Mnemonic = iota
	MInvalid

	// Data movement.
	MMov
	MMovzx
	MMovsx
	MMovsxd
	MLea
	MPush
	MPop
	MXchg
	MCmovcc // suffix resolved per condition code at print time; see format packages
	MCbw
	MCwde
	MCdqe
	MCwd
	MCdq
	MCqo
	MMovsb
	MMovsw
	MMovsd
	MMovsq
	MStosb
	MStosw
	MStosd
	MStosq
	MLodsb
	MLodsw
	MLodsd
	MLodsq
	MScasb
	MScasw
	MScasd
	MScasq
	MCmpsb
	MCmpsw
	MCmpsd
	MCmpsq
	MXlat
	MBswap
	MLes
	MLds
	MLeave
	MAam
	MAad

	// Integer arithmetic and logic.
	MAdd
	MAdc
	MSub
	MSbb
	MCmp
	MInc
	MDec
	MNeg
	MMul
	MImul
	MDiv
	MIdiv
	MAnd
	MOr
	MXor
	MNot
	MTest
	MShl
	MShr
	MSar
	MRol
	MRor
	MRcl
	MRcr
	MSetcc

	// Bit manipulation.
	MBt
	MBts
	MBtr
	MBtc
	MBsf
	MBsr
	MPopcnt

	// Control flow.
	MJmp
	MJcc
	MCall
	MRet
	MRetf
	MLoop
	MLoope
	MLoopne
	MJcxz
	MInt
	MInt3
	MInto
	MIret
	MSyscall
	MSysret
	MSysenter
	MSysexit
	MHlt
	MUd2
	MNop
	MPause
	MEndbr32
	MEndbr64

	// Stack/flags.
	MPushf
	MPopf
	MPushfq
	MPopfq
	MSahf
	MLahf
	MClc
	MStc
	MCmc
	MCld
	MStd
	MCli
	MSti

	// I/O.
	MIn
	MOut
	MInsb
	MInsw
	MInsd
	MOutsb
	MOutsw
	MOutsd

	// Flag-affecting no-result compare/test variants already listed above
	// (Cmp, Test); system/segment instructions follow.
	MLgdt
	MSgdt
	MLidt
	MSidt
	MLldt
	MSldt
	MLtr
	MStr
	MLmsw
	MSmsw
	MClts
	MInvd
	MWbinvd
	MInvlpg
	MRdmsr
	MWrmsr
	MRdtsc
	MRdtscp
	MRdpmc
	MCpuid
	MXgetbv
	MXsetbv

	// x87 floating point (representative subset).
	MFld
	MFst
	MFstp
	MFild
	MFist
	MFistp
	MFadd
	MFaddp
	MFsub
	MFsubp
	MFsubr
	MFsubrp
	MFmul
	MFmulp
	MFdiv
	MFdivp
	MFdivr
	MFdivrp
	MFcom
	MFcomp
	MFcompp
	MFucom
	MFucomp
	MFucompp
	MFchs
	MFabs
	MFxch
	MFld1
	MFldz
	MFldpi
	MFsqrt
	MFsin
	MFcos
	MFsincos
	MFpatan
	MFptan
	MFnop
	MFninit
	MFnstcw
	MFldcw
	MFnstsw
	MFwait

	// MMX (representative subset; most take an ModR/M MMX or memory operand).
	MMovd
	MMovq
	MPaddb
	MPaddw
	MPaddd
	MPsubb
	MPsubw
	MPsubd
	MPand
	MPor
	MPxor
	MPcmpeqb
	MPcmpeqw
	MPcmpeqd
	MEmms

	// SSE/SSE2 (representative subset).
	MMovaps
	MMovups
	MMovapd
	MMovupd
	MMovss
	MMovsd2 // scalar double-precision MOVSD (distinguished from the string-op MMovsd above)
	MAddps
	MAddpd
	MAddss
	MAddsd
	MSubps
	MSubpd
	MSubss
	MSubsd
	MMulps
	MMulpd
	MMulss
	MMulsd
	MDivps
	MDivpd
	MDivss
	MDivsd
	MXorps
	MXorpd
	MAndps
	MAndpd
	MOrps
	MOrpd
	MPshufd
	MShufps
	MPinsrw
	MPextrw
	MCvtsi2sd
	MCvtsi2ss
	MCvttsd2si
	MCvttss2si
	MComiss
	MComisd
	MUcomiss
	MUcomisd

	// 3DNow! (representative subset).
	MPfadd
	MPfsub
	MPfmul
	MPfcmpeq
	MPfcmpgt
	MPfcmpge
	MPf2id
	MPi2fd
	MFemms

	// SSE2 128-bit integer moves (representative subset).
	MMovdqa
	MMovdqu
	MPshufb
	MPaddq
	MPsubq
	MPmullw
	MPmaddwd
	MPalignr

	// VEX-encoded AVX forms (the legacy SSE re-encodings plus the handful
	// of genuinely new AVX operations).
	MVmovss
	MVmovsd
	MVmovups
	MVmovupd
	MVmovaps
	MVmovapd
	MVmovdqa
	MVmovdqu
	MVbroadcastss
	MVaddps
	MVaddpd
	MVaddss
	MVaddsd
	MVsubps
	MVsubpd
	MVmulps
	MVmulpd
	MVdivps
	MVdivpd
	MVxorps
	MVxorpd
	MVandps
	MVpxor
	MVpand
	MVpor
	MVpalignr
	MVgatherdps
	MVzeroupper
	MVzeroall

	// AES-NI / CLMUL (representative subset; 0F-38 and 0F-3A maps).
	MAesenc
	MAesenclast
	MAesdec
	MAesdeclast
	MAesimc
	MAeskeygenassist
	MPclmulqdq

	// BMI1/BMI2 (representative subset; 0F-38 map, VEX.vvvv operand).
	MAndn
	MBextr
	MBzhi
	MPdep
	MPext

	// FMA3 (representative subset; 0F-38 map).
	MVfmadd213ps
	MVfmadd132ps
	MVfmadd231ps

	// SSSE3/SSE4.1 (representative subset; legacy 0F-38 map).
	MPabsb
	MPabsw
	MPabsd
	MPmovsxbw
	MPmovsxwd
	MPmovsxdq
	MPmovzxbw
	MPmovzxwd
	MPmovzxdq
	MPmulld
	MPcmpeqq
	MPackusdw
	MPminsb
	MPmaxsb
	MPtest
	MMovntdqa
	MPblendvb

	// The wider SSE/SSE2/SSE3/SSSE3/SSE4 surface, the system and
	// legacy-BCD rows, 3DNow!, the x87 long tail, BMI/ADX-adjacent
	// GPR extensions, and the VEX-encoded AVX/AVX2/FMA/FMA4 space.
	MAaa
	MAas
	MAddsubpd
	MAddsubps
	MAndnpd
	MAndnps
	MBlendpd
	MBlendps
	MBlendvpd
	MBlendvps
	MBlsi
	MBlsmsk
	MBlsr
	MBound
	MClflush
	MCmppd
	MCmpps
	MCmpsd2
	MCmpss
	MCmpxchg
	MCmpxchg16b
	MCmpxchg8b
	MCrc32
	MCvtdq2pd
	MCvtdq2ps
	MCvtpd2dq
	MCvtpd2pi
	MCvtpd2ps
	MCvtpi2pd
	MCvtpi2ps
	MCvtps2dq
	MCvtps2pd
	MCvtps2pi
	MCvtsd2si
	MCvtsd2ss
	MCvtss2sd
	MCvtss2si
	MCvttpd2dq
	MCvttpd2pi
	MCvttps2dq
	MCvttps2pi
	MDaa
	MDas
	MDppd
	MDpps
	MEnter
	MExtractps
	MF2xm1
	MFcomi
	MFcomip
	MFdecstp
	MFfree
	MFiadd
	MFicom
	MFicomp
	MFidiv
	MFidivr
	MFimul
	MFincstp
	MFisttp
	MFisub
	MFisubr
	MFldenv
	MFldl2e
	MFldl2t
	MFldlg2
	MFldln2
	MFnclex
	MFnsave
	MFnstenv
	MFprem
	MFprem1
	MFrndint
	MFrstor
	MFscale
	MFtst
	MFucomi
	MFucomip
	MFxam
	MFxrstor
	MFxsave
	MFxtract
	MFyl2x
	MFyl2xp1
	MHaddpd
	MHaddps
	MHsubpd
	MHsubps
	MInsertps
	MInt1
	MLar
	MLddqu
	MLdmxcsr
	MLfence
	MLfs
	MLgs
	MLsl
	MLss
	MLzcnt
	MMaskmovdqu
	MMaskmovq
	MMaxpd
	MMaxps
	MMaxsd
	MMaxss
	MMfence
	MMinpd
	MMinps
	MMinsd
	MMinss
	MMonitor
	MMovbe
	MMovddup
	MMovdq2q
	MMovhlps
	MMovhpd
	MMovhps
	MMovlhps
	MMovlpd
	MMovlps
	MMovmskpd
	MMovmskps
	MMovntdq
	MMovnti
	MMovntpd
	MMovntps
	MMovntq
	MMovq2dq
	MMovshdup
	MMovsldup
	MMpsadbw
	MMulx
	MMwait
	MPackssdw
	MPacksswb
	MPackuswb
	MPaddsb
	MPaddsw
	MPaddusb
	MPaddusw
	MPandn
	MPavgb
	MPavgusb
	MPavgw
	MPblendw
	MPcmpestri
	MPcmpestrm
	MPcmpgtb
	MPcmpgtd
	MPcmpgtq
	MPcmpgtw
	MPcmpistri
	MPcmpistrm
	MPextrb
	MPextrd
	MPextrq
	MPf2iw
	MPfacc
	MPfmax
	MPfmin
	MPfnacc
	MPfpnacc
	MPfrcp
	MPfrcpit1
	MPfrcpit2
	MPfrsqit1
	MPfrsqrt
	MPfsubr
	MPhaddd
	MPhaddsw
	MPhaddw
	MPhminposuw
	MPhsubd
	MPhsubsw
	MPhsubw
	MPi2fw
	MPinsrb
	MPinsrd
	MPinsrq
	MPmaddubsw
	MPmaxsd
	MPmaxsw
	MPmaxub
	MPmaxud
	MPmaxuw
	MPminsd
	MPminsw
	MPminub
	MPminud
	MPminuw
	MPmovmskb
	MPmovsxbd
	MPmovsxbq
	MPmovsxwq
	MPmovzxbd
	MPmovzxbq
	MPmovzxwq
	MPmuldq
	MPmulhrsw
	MPmulhrw
	MPmulhuw
	MPmulhw
	MPmuludq
	MPopa
	MPrefetch
	MPrefetchnta
	MPrefetcht0
	MPrefetcht1
	MPrefetcht2
	MPrefetchw
	MPsadbw
	MPshufhw
	MPshuflw
	MPshufw
	MPsignb
	MPsignd
	MPsignw
	MPslld
	MPslldq
	MPsllq
	MPsllw
	MPsrad
	MPsraw
	MPsrld
	MPsrldq
	MPsrlq
	MPsrlw
	MPsubsb
	MPsubsw
	MPsubusb
	MPsubusw
	MPswapd
	MPunpckhbw
	MPunpckhdq
	MPunpckhqdq
	MPunpckhwd
	MPunpcklbw
	MPunpckldq
	MPunpcklqdq
	MPunpcklwd
	MPusha
	MRcpps
	MRcpss
	MRdrand
	MRdseed
	MRorx
	MRoundpd
	MRoundps
	MRoundsd
	MRoundss
	MRsqrtps
	MRsqrtss
	MSarx
	MSfence
	MShld
	MShlx
	MShrd
	MShrx
	MShufpd
	MSqrtpd
	MSqrtps
	MSqrtsd
	MSqrtss
	MStmxcsr
	MSwapgs
	MTzcnt
	MUd1
	MUnpckhpd
	MUnpckhps
	MUnpcklpd
	MUnpcklps
	MVaesdec
	MVaesdeclast
	MVaesenc
	MVaesenclast
	MVaesimc
	MVandnpd
	MVandnps
	MVandpd
	MVblendpd
	MVblendps
	MVblendvpd
	MVblendvps
	MVbroadcastf128
	MVbroadcastsd
	MVcmppd
	MVcmpps
	MVcmpsd
	MVcmpss
	MVcomisd
	MVcomiss
	MVdivsd
	MVdivss
	MVdppd
	MVdpps
	MVerr
	MVerw
	MVextractf128
	MVextracti128
	MVextractps
	MVfmadd132pd
	MVfmadd132sd
	MVfmadd132ss
	MVfmadd213pd
	MVfmadd213sd
	MVfmadd213ss
	MVfmadd231pd
	MVfmadd231sd
	MVfmadd231ss
	MVfmaddpd
	MVfmaddps
	MVfmaddsd
	MVfmaddss
	MVfmsub132pd
	MVfmsub132ps
	MVfmsub213pd
	MVfmsub213ps
	MVfmsub231pd
	MVfmsub231ps
	MVgatherqps
	MVinsertf128
	MVinserti128
	MVinsertps
	MVlddqu
	MVmaxpd
	MVmaxps
	MVmaxsd
	MVmaxss
	MVminpd
	MVminps
	MVminsd
	MVminss
	MVmovd
	MVmovmskpd
	MVmovmskps
	MVmovntdq
	MVmovntdqa
	MVmovntpd
	MVmovntps
	MVmovq
	MVmpsadbw
	MVmulsd
	MVmulss
	MVorpd
	MVorps
	MVpabsb
	MVpabsd
	MVpabsw
	MVpackssdw
	MVpacksswb
	MVpackusdw
	MVpackuswb
	MVpaddb
	MVpaddd
	MVpaddq
	MVpaddsb
	MVpaddsw
	MVpaddusb
	MVpaddusw
	MVpaddw
	MVpandn
	MVpavgb
	MVpavgw
	MVpblendd
	MVpblendvb
	MVpblendw
	MVpcmpeqb
	MVpcmpeqd
	MVpcmpeqq
	MVpcmpeqw
	MVpcmpestri
	MVpcmpestrm
	MVpcmpgtb
	MVpcmpgtd
	MVpcmpgtq
	MVpcmpgtw
	MVpcmpistri
	MVpcmpistrm
	MVperm2f128
	MVperm2i128
	MVpermilpd
	MVpermilps
	MVpermpd
	MVpermq
	MVpextrb
	MVpextrd
	MVpextrq
	MVpextrw
	MVpgatherdd
	MVpgatherqd
	MVphaddd
	MVphaddsw
	MVphaddw
	MVphsubd
	MVphsubsw
	MVphsubw
	MVpinsrb
	MVpinsrd
	MVpinsrq
	MVpmaddubsw
	MVpmaddwd
	MVpmaxsb
	MVpmaxsd
	MVpmaxsw
	MVpmaxub
	MVpmaxud
	MVpmaxuw
	MVpminsb
	MVpminsd
	MVpminsw
	MVpminub
	MVpminud
	MVpminuw
	MVpmovmskb
	MVpmovsxbd
	MVpmovsxbq
	MVpmovsxbw
	MVpmovsxdq
	MVpmovsxwd
	MVpmovsxwq
	MVpmovzxbd
	MVpmovzxbq
	MVpmovzxbw
	MVpmovzxdq
	MVpmovzxwd
	MVpmovzxwq
	MVpmuldq
	MVpmulhrsw
	MVpmulhuw
	MVpmulhw
	MVpmulld
	MVpmullw
	MVpmuludq
	MVpsadbw
	MVpshufb
	MVpshufd
	MVpshufhw
	MVpshuflw
	MVpsignb
	MVpsignd
	MVpsignw
	MVpslld
	MVpslldq
	MVpsllq
	MVpsllvd
	MVpsllvq
	MVpsllw
	MVpsrad
	MVpsraw
	MVpsrld
	MVpsrldq
	MVpsrlq
	MVpsrlvd
	MVpsrlvq
	MVpsrlw
	MVpsubb
	MVpsubd
	MVpsubq
	MVpsubsb
	MVpsubsw
	MVpsubusb
	MVpsubusw
	MVpsubw
	MVptest
	MVpunpckhbw
	MVpunpckhdq
	MVpunpckhqdq
	MVpunpckhwd
	MVpunpcklbw
	MVpunpckldq
	MVpunpcklqdq
	MVpunpcklwd
	MVroundpd
	MVroundps
	MVroundsd
	MVroundss
	MVshufpd
	MVshufps
	MVsqrtpd
	MVsqrtps
	MVsqrtsd
	MVsqrtss
	MVsubsd
	MVsubss
	MVtestpd
	MVtestps
	MVucomisd
	MVucomiss
	MVunpckhpd
	MVunpckhps
	MVunpcklpd
	MVunpcklps
	MXadd
	MXrstor
	MXsave
	MXsaveopt

	// Sentinel marking the end of the catalogue; not a real mnemonic.
	mnemonicCount
)

var mnemonicNames = [mnemonicCount]string{
	MNone: "", MInvalid: "??",

	MMov: "mov", MMovzx: "movzx", MMovsx: "movsx", MMovsxd: "movsxd", MLea: "lea",
	MPush: "push", MPop: "pop", MXchg: "xchg", MCmovcc: "cmovcc",
	MCbw: "cbw", MCwde: "cwde", MCdqe: "cdqe", MCwd: "cwd", MCdq: "cdq", MCqo: "cqo",
	MMovsb: "movsb", MMovsw: "movsw", MMovsd: "movsd", MMovsq: "movsq",
	MStosb: "stosb", MStosw: "stosw", MStosd: "stosd", MStosq: "stosq",
	MLodsb: "lodsb", MLodsw: "lodsw", MLodsd: "lodsd", MLodsq: "lodsq",
	MScasb: "scasb", MScasw: "scasw", MScasd: "scasd", MScasq: "scasq",
	MCmpsb: "cmpsb", MCmpsw: "cmpsw", MCmpsd: "cmpsd", MCmpsq: "cmpsq",
	MXlat: "xlat", MBswap: "bswap",
	MLes: "les", MLds: "lds", MLeave: "leave", MAam: "aam", MAad: "aad",

	MAdd: "add", MAdc: "adc", MSub: "sub", MSbb: "sbb", MCmp: "cmp",
	MInc: "inc", MDec: "dec", MNeg: "neg", MMul: "mul", MImul: "imul",
	MDiv: "div", MIdiv: "idiv", MAnd: "and", MOr: "or", MXor: "xor", MNot: "not",
	MTest: "test", MShl: "shl", MShr: "shr", MSar: "sar",
	MRol: "rol", MRor: "ror", MRcl: "rcl", MRcr: "rcr", MSetcc: "setcc",

	MBt: "bt", MBts: "bts", MBtr: "btr", MBtc: "btc",
	MBsf: "bsf", MBsr: "bsr", MPopcnt: "popcnt",

	MJmp: "jmp", MJcc: "jcc", MCall: "call", MRet: "ret", MRetf: "retf",
	MLoop: "loop", MLoope: "loope", MLoopne: "loopne", MJcxz: "jcxz",
	MInt: "int", MInt3: "int3", MInto: "into", MIret: "iret",
	MSyscall: "syscall", MSysret: "sysret", MSysenter: "sysenter", MSysexit: "sysexit",
	MHlt: "hlt", MUd2: "ud2", MNop: "nop", MPause: "pause",
	MEndbr32: "endbr32", MEndbr64: "endbr64",

	MPushf: "pushf", MPopf: "popf", MPushfq: "pushfq", MPopfq: "popfq",
	MSahf: "sahf", MLahf: "lahf", MClc: "clc", MStc: "stc", MCmc: "cmc",
	MCld: "cld", MStd: "std", MCli: "cli", MSti: "sti",

	MIn: "in", MOut: "out",
	MInsb: "insb", MInsw: "insw", MInsd: "insd",
	MOutsb: "outsb", MOutsw: "outsw", MOutsd: "outsd",

	MLgdt: "lgdt", MSgdt: "sgdt", MLidt: "lidt", MSidt: "sidt",
	MLldt: "lldt", MSldt: "sldt", MLtr: "ltr", MStr: "str",
	MLmsw: "lmsw", MSmsw: "smsw", MClts: "clts",
	MInvd: "invd", MWbinvd: "wbinvd", MInvlpg: "invlpg",
	MRdmsr: "rdmsr", MWrmsr: "wrmsr", MRdtsc: "rdtsc", MRdtscp: "rdtscp",
	MRdpmc: "rdpmc", MCpuid: "cpuid", MXgetbv: "xgetbv", MXsetbv: "xsetbv",

	MFld: "fld", MFst: "fst", MFstp: "fstp", MFild: "fild", MFist: "fist", MFistp: "fistp",
	MFadd: "fadd", MFaddp: "faddp", MFsub: "fsub", MFsubp: "fsubp",
	MFsubr: "fsubr", MFsubrp: "fsubrp", MFmul: "fmul", MFmulp: "fmulp",
	MFdiv: "fdiv", MFdivp: "fdivp", MFdivr: "fdivr", MFdivrp: "fdivrp",
	MFcom: "fcom", MFcomp: "fcomp", MFcompp: "fcompp",
	MFucom: "fucom", MFucomp: "fucomp", MFucompp: "fucompp",
	MFchs: "fchs", MFabs: "fabs", MFxch: "fxch",
	MFld1: "fld1", MFldz: "fldz", MFldpi: "fldpi",
	MFsqrt: "fsqrt", MFsin: "fsin", MFcos: "fcos", MFsincos: "fsincos",
	MFpatan: "fpatan", MFptan: "fptan",
	MFnop: "fnop", MFninit: "fninit", MFnstcw: "fnstcw", MFldcw: "fldcw",
	MFnstsw: "fnstsw", MFwait: "fwait",

	MMovd: "movd", MMovq: "movq",
	MPaddb: "paddb", MPaddw: "paddw", MPaddd: "paddd",
	MPsubb: "psubb", MPsubw: "psubw", MPsubd: "psubd",
	MPand: "pand", MPor: "por", MPxor: "pxor",
	MPcmpeqb: "pcmpeqb", MPcmpeqw: "pcmpeqw", MPcmpeqd: "pcmpeqd",
	MEmms: "emms",

	MMovaps: "movaps", MMovups: "movups", MMovapd: "movapd", MMovupd: "movupd",
	MMovss: "movss", MMovsd2: "movsd",
	MAddps: "addps", MAddpd: "addpd", MAddss: "addss", MAddsd: "addsd",
	MSubps: "subps", MSubpd: "subpd", MSubss: "subss", MSubsd: "subsd",
	MMulps: "mulps", MMulpd: "mulpd", MMulss: "mulss", MMulsd: "mulsd",
	MDivps: "divps", MDivpd: "divpd", MDivss: "divss", MDivsd: "divsd",
	MXorps: "xorps", MXorpd: "xorpd", MAndps: "andps", MAndpd: "andpd",
	MOrps: "orps", MOrpd: "orpd",
	MPshufd: "pshufd", MShufps: "shufps", MPinsrw: "pinsrw", MPextrw: "pextrw",
	MCvtsi2sd: "cvtsi2sd", MCvtsi2ss: "cvtsi2ss",
	MCvttsd2si: "cvttsd2si", MCvttss2si: "cvttss2si",
	MComiss: "comiss", MComisd: "comisd", MUcomiss: "ucomiss", MUcomisd: "ucomisd",

	MPfadd: "pfadd", MPfsub: "pfsub", MPfmul: "pfmul",
	MPfcmpeq: "pfcmpeq", MPfcmpgt: "pfcmpgt", MPfcmpge: "pfcmpge",
	MPf2id: "pf2id", MPi2fd: "pi2fd", MFemms: "femms",

	MMovdqa: "movdqa", MMovdqu: "movdqu", MPshufb: "pshufb",
	MPaddq: "paddq", MPsubq: "psubq", MPmullw: "pmullw", MPmaddwd: "pmaddwd",
	MPalignr: "palignr",

	MVmovss: "vmovss", MVmovsd: "vmovsd", MVmovups: "vmovups", MVmovupd: "vmovupd",
	MVmovaps: "vmovaps", MVmovapd: "vmovapd", MVmovdqa: "vmovdqa", MVmovdqu: "vmovdqu",
	MVbroadcastss: "vbroadcastss",
	MVaddps: "vaddps", MVaddpd: "vaddpd", MVaddss: "vaddss", MVaddsd: "vaddsd",
	MVsubps: "vsubps", MVsubpd: "vsubpd", MVmulps: "vmulps", MVmulpd: "vmulpd",
	MVdivps: "vdivps", MVdivpd: "vdivpd", MVxorps: "vxorps", MVxorpd: "vxorpd",
	MVandps: "vandps", MVpxor: "vpxor", MVpand: "vpand", MVpor: "vpor",
	MVpalignr: "vpalignr", MVgatherdps: "vgatherdps",
	MVzeroupper: "vzeroupper", MVzeroall: "vzeroall",

	MAesenc: "aesenc", MAesenclast: "aesenclast", MAesdec: "aesdec", MAesdeclast: "aesdeclast",
	MAesimc: "aesimc", MAeskeygenassist: "aeskeygenassist", MPclmulqdq: "pclmulqdq",

	MAndn: "andn", MBextr: "bextr", MBzhi: "bzhi", MPdep: "pdep", MPext: "pext",

	MVfmadd213ps: "vfmadd213ps", MVfmadd132ps: "vfmadd132ps", MVfmadd231ps: "vfmadd231ps",

	MPabsb: "pabsb", MPabsw: "pabsw", MPabsd: "pabsd",
	MPmovsxbw: "pmovsxbw", MPmovsxwd: "pmovsxwd", MPmovsxdq: "pmovsxdq",
	MPmovzxbw: "pmovzxbw", MPmovzxwd: "pmovzxwd", MPmovzxdq: "pmovzxdq",
	MPmulld: "pmulld", MPcmpeqq: "pcmpeqq", MPackusdw: "packusdw",
	MPminsb: "pminsb", MPmaxsb: "pmaxsb", MPtest: "ptest",
	MMovntdqa: "movntdqa", MPblendvb: "pblendvb",

	MAaa: "aaa", MAas: "aas", MAddsubpd: "addsubpd", MAddsubps: "addsubps",
	MAndnpd: "andnpd", MAndnps: "andnps", MBlendpd: "blendpd", MBlendps: "blendps",
	MBlendvpd: "blendvpd", MBlendvps: "blendvps", MBlsi: "blsi", MBlsmsk: "blsmsk",
	MBlsr: "blsr", MBound: "bound", MClflush: "clflush", MCmppd: "cmppd",
	MCmpps: "cmpps", MCmpsd2: "cmpsd", MCmpss: "cmpss", MCmpxchg: "cmpxchg",
	MCmpxchg16b: "cmpxchg16b", MCmpxchg8b: "cmpxchg8b", MCrc32: "crc32", MCvtdq2pd: "cvtdq2pd",
	MCvtdq2ps: "cvtdq2ps", MCvtpd2dq: "cvtpd2dq", MCvtpd2pi: "cvtpd2pi", MCvtpd2ps: "cvtpd2ps",
	MCvtpi2pd: "cvtpi2pd", MCvtpi2ps: "cvtpi2ps", MCvtps2dq: "cvtps2dq", MCvtps2pd: "cvtps2pd",
	MCvtps2pi: "cvtps2pi", MCvtsd2si: "cvtsd2si", MCvtsd2ss: "cvtsd2ss", MCvtss2sd: "cvtss2sd",
	MCvtss2si: "cvtss2si", MCvttpd2dq: "cvttpd2dq", MCvttpd2pi: "cvttpd2pi", MCvttps2dq: "cvttps2dq",
	MCvttps2pi: "cvttps2pi", MDaa: "daa", MDas: "das", MDppd: "dppd",
	MDpps: "dpps", MEnter: "enter", MExtractps: "extractps", MF2xm1: "f2xm1",
	MFcomi: "fcomi", MFcomip: "fcomip", MFdecstp: "fdecstp", MFfree: "ffree",
	MFiadd: "fiadd", MFicom: "ficom", MFicomp: "ficomp", MFidiv: "fidiv",
	MFidivr: "fidivr", MFimul: "fimul", MFincstp: "fincstp", MFisttp: "fisttp",
	MFisub: "fisub", MFisubr: "fisubr", MFldenv: "fldenv", MFldl2e: "fldl2e",
	MFldl2t: "fldl2t", MFldlg2: "fldlg2", MFldln2: "fldln2", MFnclex: "fnclex",
	MFnsave: "fnsave", MFnstenv: "fnstenv", MFprem: "fprem", MFprem1: "fprem1",
	MFrndint: "frndint", MFrstor: "frstor", MFscale: "fscale", MFtst: "ftst",
	MFucomi: "fucomi", MFucomip: "fucomip", MFxam: "fxam", MFxrstor: "fxrstor",
	MFxsave: "fxsave", MFxtract: "fxtract", MFyl2x: "fyl2x", MFyl2xp1: "fyl2xp1",
	MHaddpd: "haddpd", MHaddps: "haddps", MHsubpd: "hsubpd", MHsubps: "hsubps",
	MInsertps: "insertps", MInt1: "int1", MLar: "lar", MLddqu: "lddqu",
	MLdmxcsr: "ldmxcsr", MLfence: "lfence", MLfs: "lfs", MLgs: "lgs",
	MLsl: "lsl", MLss: "lss", MLzcnt: "lzcnt", MMaskmovdqu: "maskmovdqu",
	MMaskmovq: "maskmovq", MMaxpd: "maxpd", MMaxps: "maxps", MMaxsd: "maxsd",
	MMaxss: "maxss", MMfence: "mfence", MMinpd: "minpd", MMinps: "minps",
	MMinsd: "minsd", MMinss: "minss", MMonitor: "monitor", MMovbe: "movbe",
	MMovddup: "movddup", MMovdq2q: "movdq2q", MMovhlps: "movhlps", MMovhpd: "movhpd",
	MMovhps: "movhps", MMovlhps: "movlhps", MMovlpd: "movlpd", MMovlps: "movlps",
	MMovmskpd: "movmskpd", MMovmskps: "movmskps", MMovntdq: "movntdq", MMovnti: "movnti",
	MMovntpd: "movntpd", MMovntps: "movntps", MMovntq: "movntq", MMovq2dq: "movq2dq",
	MMovshdup: "movshdup", MMovsldup: "movsldup", MMpsadbw: "mpsadbw", MMulx: "mulx",
	MMwait: "mwait", MPackssdw: "packssdw", MPacksswb: "packsswb", MPackuswb: "packuswb",
	MPaddsb: "paddsb", MPaddsw: "paddsw", MPaddusb: "paddusb", MPaddusw: "paddusw",
	MPandn: "pandn", MPavgb: "pavgb", MPavgusb: "pavgusb", MPavgw: "pavgw",
	MPblendw: "pblendw", MPcmpestri: "pcmpestri", MPcmpestrm: "pcmpestrm", MPcmpgtb: "pcmpgtb",
	MPcmpgtd: "pcmpgtd", MPcmpgtq: "pcmpgtq", MPcmpgtw: "pcmpgtw", MPcmpistri: "pcmpistri",
	MPcmpistrm: "pcmpistrm", MPextrb: "pextrb", MPextrd: "pextrd", MPextrq: "pextrq",
	MPf2iw: "pf2iw", MPfacc: "pfacc", MPfmax: "pfmax", MPfmin: "pfmin",
	MPfnacc: "pfnacc", MPfpnacc: "pfpnacc", MPfrcp: "pfrcp", MPfrcpit1: "pfrcpit1",
	MPfrcpit2: "pfrcpit2", MPfrsqit1: "pfrsqit1", MPfrsqrt: "pfrsqrt", MPfsubr: "pfsubr",
	MPhaddd: "phaddd", MPhaddsw: "phaddsw", MPhaddw: "phaddw", MPhminposuw: "phminposuw",
	MPhsubd: "phsubd", MPhsubsw: "phsubsw", MPhsubw: "phsubw", MPi2fw: "pi2fw",
	MPinsrb: "pinsrb", MPinsrd: "pinsrd", MPinsrq: "pinsrq", MPmaddubsw: "pmaddubsw",
	MPmaxsd: "pmaxsd", MPmaxsw: "pmaxsw", MPmaxub: "pmaxub", MPmaxud: "pmaxud",
	MPmaxuw: "pmaxuw", MPminsd: "pminsd", MPminsw: "pminsw", MPminub: "pminub",
	MPminud: "pminud", MPminuw: "pminuw", MPmovmskb: "pmovmskb", MPmovsxbd: "pmovsxbd",
	MPmovsxbq: "pmovsxbq", MPmovsxwq: "pmovsxwq", MPmovzxbd: "pmovzxbd", MPmovzxbq: "pmovzxbq",
	MPmovzxwq: "pmovzxwq", MPmuldq: "pmuldq", MPmulhrsw: "pmulhrsw", MPmulhrw: "pmulhrw",
	MPmulhuw: "pmulhuw", MPmulhw: "pmulhw", MPmuludq: "pmuludq", MPopa: "popa",
	MPrefetch: "prefetch", MPrefetchnta: "prefetchnta", MPrefetcht0: "prefetcht0", MPrefetcht1: "prefetcht1",
	MPrefetcht2: "prefetcht2", MPrefetchw: "prefetchw", MPsadbw: "psadbw", MPshufhw: "pshufhw",
	MPshuflw: "pshuflw", MPshufw: "pshufw", MPsignb: "psignb", MPsignd: "psignd",
	MPsignw: "psignw", MPslld: "pslld", MPslldq: "pslldq", MPsllq: "psllq",
	MPsllw: "psllw", MPsrad: "psrad", MPsraw: "psraw", MPsrld: "psrld",
	MPsrldq: "psrldq", MPsrlq: "psrlq", MPsrlw: "psrlw", MPsubsb: "psubsb",
	MPsubsw: "psubsw", MPsubusb: "psubusb", MPsubusw: "psubusw", MPswapd: "pswapd",
	MPunpckhbw: "punpckhbw", MPunpckhdq: "punpckhdq", MPunpckhqdq: "punpckhqdq", MPunpckhwd: "punpckhwd",
	MPunpcklbw: "punpcklbw", MPunpckldq: "punpckldq", MPunpcklqdq: "punpcklqdq", MPunpcklwd: "punpcklwd",
	MPusha: "pusha", MRcpps: "rcpps", MRcpss: "rcpss", MRdrand: "rdrand",
	MRdseed: "rdseed", MRorx: "rorx", MRoundpd: "roundpd", MRoundps: "roundps",
	MRoundsd: "roundsd", MRoundss: "roundss", MRsqrtps: "rsqrtps", MRsqrtss: "rsqrtss",
	MSarx: "sarx", MSfence: "sfence", MShld: "shld", MShlx: "shlx",
	MShrd: "shrd", MShrx: "shrx", MShufpd: "shufpd", MSqrtpd: "sqrtpd",
	MSqrtps: "sqrtps", MSqrtsd: "sqrtsd", MSqrtss: "sqrtss", MStmxcsr: "stmxcsr",
	MSwapgs: "swapgs", MTzcnt: "tzcnt", MUd1: "ud1", MUnpckhpd: "unpckhpd",
	MUnpckhps: "unpckhps", MUnpcklpd: "unpcklpd", MUnpcklps: "unpcklps", MVaesdec: "vaesdec",
	MVaesdeclast: "vaesdeclast", MVaesenc: "vaesenc", MVaesenclast: "vaesenclast", MVaesimc: "vaesimc",
	MVandnpd: "vandnpd", MVandnps: "vandnps", MVandpd: "vandpd", MVblendpd: "vblendpd",
	MVblendps: "vblendps", MVblendvpd: "vblendvpd", MVblendvps: "vblendvps", MVbroadcastf128: "vbroadcastf128",
	MVbroadcastsd: "vbroadcastsd", MVcmppd: "vcmppd", MVcmpps: "vcmpps", MVcmpsd: "vcmpsd",
	MVcmpss: "vcmpss", MVcomisd: "vcomisd", MVcomiss: "vcomiss", MVdivsd: "vdivsd",
	MVdivss: "vdivss", MVdppd: "vdppd", MVdpps: "vdpps", MVerr: "verr",
	MVerw: "verw", MVextractf128: "vextractf128", MVextracti128: "vextracti128", MVextractps: "vextractps",
	MVfmadd132pd: "vfmadd132pd", MVfmadd132sd: "vfmadd132sd", MVfmadd132ss: "vfmadd132ss", MVfmadd213pd: "vfmadd213pd",
	MVfmadd213sd: "vfmadd213sd", MVfmadd213ss: "vfmadd213ss", MVfmadd231pd: "vfmadd231pd", MVfmadd231sd: "vfmadd231sd",
	MVfmadd231ss: "vfmadd231ss", MVfmaddpd: "vfmaddpd", MVfmaddps: "vfmaddps", MVfmaddsd: "vfmaddsd",
	MVfmaddss: "vfmaddss", MVfmsub132pd: "vfmsub132pd", MVfmsub132ps: "vfmsub132ps", MVfmsub213pd: "vfmsub213pd",
	MVfmsub213ps: "vfmsub213ps", MVfmsub231pd: "vfmsub231pd", MVfmsub231ps: "vfmsub231ps", MVgatherqps: "vgatherqps",
	MVinsertf128: "vinsertf128", MVinserti128: "vinserti128", MVinsertps: "vinsertps", MVlddqu: "vlddqu",
	MVmaxpd: "vmaxpd", MVmaxps: "vmaxps", MVmaxsd: "vmaxsd", MVmaxss: "vmaxss",
	MVminpd: "vminpd", MVminps: "vminps", MVminsd: "vminsd", MVminss: "vminss",
	MVmovd: "vmovd", MVmovmskpd: "vmovmskpd", MVmovmskps: "vmovmskps", MVmovntdq: "vmovntdq",
	MVmovntdqa: "vmovntdqa", MVmovntpd: "vmovntpd", MVmovntps: "vmovntps", MVmovq: "vmovq",
	MVmpsadbw: "vmpsadbw", MVmulsd: "vmulsd", MVmulss: "vmulss", MVorpd: "vorpd",
	MVorps: "vorps", MVpabsb: "vpabsb", MVpabsd: "vpabsd", MVpabsw: "vpabsw",
	MVpackssdw: "vpackssdw", MVpacksswb: "vpacksswb", MVpackusdw: "vpackusdw", MVpackuswb: "vpackuswb",
	MVpaddb: "vpaddb", MVpaddd: "vpaddd", MVpaddq: "vpaddq", MVpaddsb: "vpaddsb",
	MVpaddsw: "vpaddsw", MVpaddusb: "vpaddusb", MVpaddusw: "vpaddusw", MVpaddw: "vpaddw",
	MVpandn: "vpandn", MVpavgb: "vpavgb", MVpavgw: "vpavgw", MVpblendd: "vpblendd",
	MVpblendvb: "vpblendvb", MVpblendw: "vpblendw", MVpcmpeqb: "vpcmpeqb", MVpcmpeqd: "vpcmpeqd",
	MVpcmpeqq: "vpcmpeqq", MVpcmpeqw: "vpcmpeqw", MVpcmpestri: "vpcmpestri", MVpcmpestrm: "vpcmpestrm",
	MVpcmpgtb: "vpcmpgtb", MVpcmpgtd: "vpcmpgtd", MVpcmpgtq: "vpcmpgtq", MVpcmpgtw: "vpcmpgtw",
	MVpcmpistri: "vpcmpistri", MVpcmpistrm: "vpcmpistrm", MVperm2f128: "vperm2f128", MVperm2i128: "vperm2i128",
	MVpermilpd: "vpermilpd", MVpermilps: "vpermilps", MVpermpd: "vpermpd", MVpermq: "vpermq",
	MVpextrb: "vpextrb", MVpextrd: "vpextrd", MVpextrq: "vpextrq", MVpextrw: "vpextrw",
	MVpgatherdd: "vpgatherdd", MVpgatherqd: "vpgatherqd", MVphaddd: "vphaddd", MVphaddsw: "vphaddsw",
	MVphaddw: "vphaddw", MVphsubd: "vphsubd", MVphsubsw: "vphsubsw", MVphsubw: "vphsubw",
	MVpinsrb: "vpinsrb", MVpinsrd: "vpinsrd", MVpinsrq: "vpinsrq", MVpmaddubsw: "vpmaddubsw",
	MVpmaddwd: "vpmaddwd", MVpmaxsb: "vpmaxsb", MVpmaxsd: "vpmaxsd", MVpmaxsw: "vpmaxsw",
	MVpmaxub: "vpmaxub", MVpmaxud: "vpmaxud", MVpmaxuw: "vpmaxuw", MVpminsb: "vpminsb",
	MVpminsd: "vpminsd", MVpminsw: "vpminsw", MVpminub: "vpminub", MVpminud: "vpminud",
	MVpminuw: "vpminuw", MVpmovmskb: "vpmovmskb", MVpmovsxbd: "vpmovsxbd", MVpmovsxbq: "vpmovsxbq",
	MVpmovsxbw: "vpmovsxbw", MVpmovsxdq: "vpmovsxdq", MVpmovsxwd: "vpmovsxwd", MVpmovsxwq: "vpmovsxwq",
	MVpmovzxbd: "vpmovzxbd", MVpmovzxbq: "vpmovzxbq", MVpmovzxbw: "vpmovzxbw", MVpmovzxdq: "vpmovzxdq",
	MVpmovzxwd: "vpmovzxwd", MVpmovzxwq: "vpmovzxwq", MVpmuldq: "vpmuldq", MVpmulhrsw: "vpmulhrsw",
	MVpmulhuw: "vpmulhuw", MVpmulhw: "vpmulhw", MVpmulld: "vpmulld", MVpmullw: "vpmullw",
	MVpmuludq: "vpmuludq", MVpsadbw: "vpsadbw", MVpshufb: "vpshufb", MVpshufd: "vpshufd",
	MVpshufhw: "vpshufhw", MVpshuflw: "vpshuflw", MVpsignb: "vpsignb", MVpsignd: "vpsignd",
	MVpsignw: "vpsignw", MVpslld: "vpslld", MVpslldq: "vpslldq", MVpsllq: "vpsllq",
	MVpsllvd: "vpsllvd", MVpsllvq: "vpsllvq", MVpsllw: "vpsllw", MVpsrad: "vpsrad",
	MVpsraw: "vpsraw", MVpsrld: "vpsrld", MVpsrldq: "vpsrldq", MVpsrlq: "vpsrlq",
	MVpsrlvd: "vpsrlvd", MVpsrlvq: "vpsrlvq", MVpsrlw: "vpsrlw", MVpsubb: "vpsubb",
	MVpsubd: "vpsubd", MVpsubq: "vpsubq", MVpsubsb: "vpsubsb", MVpsubsw: "vpsubsw",
	MVpsubusb: "vpsubusb", MVpsubusw: "vpsubusw", MVpsubw: "vpsubw", MVptest: "vptest",
	MVpunpckhbw: "vpunpckhbw", MVpunpckhdq: "vpunpckhdq", MVpunpckhqdq: "vpunpckhqdq", MVpunpckhwd: "vpunpckhwd",
	MVpunpcklbw: "vpunpcklbw", MVpunpckldq: "vpunpckldq", MVpunpcklqdq: "vpunpcklqdq", MVpunpcklwd: "vpunpcklwd",
	MVroundpd: "vroundpd", MVroundps: "vroundps", MVroundsd: "vroundsd", MVroundss: "vroundss",
	MVshufpd: "vshufpd", MVshufps: "vshufps", MVsqrtpd: "vsqrtpd", MVsqrtps: "vsqrtps",
	MVsqrtsd: "vsqrtsd", MVsqrtss: "vsqrtss", MVsubsd: "vsubsd", MVsubss: "vsubss",
	MVtestpd: "vtestpd", MVtestps: "vtestps", MVucomisd: "vucomisd", MVucomiss: "vucomiss",
	MVunpckhpd: "vunpckhpd", MVunpckhps: "vunpckhps", MVunpcklpd: "vunpcklpd", MVunpcklps: "vunpcklps",
	MXadd: "xadd", MXrstor: "xrstor", MXsave: "xsave", MXsaveopt: "xsaveopt",
}

// Name returns the canonical lower-case mnemonic text. MNone renders as the
// empty string; MInvalid renders as "??". Mnemonics whose real-world
// spelling depends on an embedded condition code (Jcc/Setcc/Cmovcc) render
// their table-level placeholder name here — the format packages resolve
// the actual suffix from the instruction's condition code field.
func (m Mnemonic) Name() string {
	if m < 0 || m >= mnemonicCount {
		return "??"
	}
	return mnemonicNames[m]
}

func (m Mnemonic) String() string { return m.Name() }

// Present reports whether m is neither MNone nor MInvalid.
func (m Mnemonic) Present() bool {
	return m != MNone && m != MInvalid
}
