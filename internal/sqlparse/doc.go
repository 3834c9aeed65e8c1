// Package sqlparse parses the constrained SQL dialect accepted by the
// questlog storage contract.
//
// The dialect covers exactly the statement shapes the journaling
// application issues:
//
//	SELECT [COUNT(*)|*|col[, col]*] FROM t [WHERE cond [AND cond]*] [ORDER BY col [ASC|DESC]] [LIMIT n]
//	INSERT INTO t (col[, col]*) VALUES (val[, val]*)
//	UPDATE t SET col = val[, col = val]* [WHERE cond [AND cond]*]
//	DELETE FROM t [WHERE cond [AND cond]*]
//
// Statements are tokenized into a typed token stream and parsed by
// recursive descent into a sealed Statement AST. Predicates are AND-only
// conjunctions of column/operator/value comparisons; OR, NOT, and
// parenthesized groups are rejected with ErrUnsupportedSyntax rather than
// misparsed.
//
// Positional placeholders (?) receive ordinals at parse time in scan
// order - SET assignments before the WHERE predicate - so the engine can
// bind the caller's parameter list left to right.
package sqlparse
