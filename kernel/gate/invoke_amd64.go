package gate

// invokeTrampoline enters trampoline the way the CPU delivers an exception
// without a privilege change: it pushes a return frame that resumes at
// trampolineResume with the current stack pointer, pushes code if withCode
// is set, loads r12 and r13 and jumps to the trampoline. It returns R12 and
// R13 as they were after IRETQ, along with the RIP and RSP stored in the
// frame.
func invokeTrampoline(trampoline uintptr, code uint64, withCode bool, r12, r13 uint64) (outR12, outR13, resumeRIP, resumeRSP uint64)

// trampolineResume is the return address used by invokeTrampoline. It runs
// on the stack of the invokeTrampoline call and returns to its caller.
func trampolineResume()
