// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package prompt renders task-specific prompts from question fields.

# Tasks

The task set is a closed enumeration:

	CodeCompletion, CodeTranslation, CodeRepair, TextToCode, CodeSummarization

ParseTask maps the wire value ("Code Completion", ...) to a Task and
rejects anything else.

# Validation

Normalize enforces the language-field invariant before any dispatch:
translation requires source_language and target_language (language is
cleared); every other task requires language (source/target are
cleared). Missing fields return ErrMissingLanguagePair or
ErrMissingLanguage - never a silent default.

# Rendering

Build produces the fixed system instruction plus one user prompt per
task template. Rendering is pure and deterministic; all I/O happens in
the dispatcher.
*/
package prompt
