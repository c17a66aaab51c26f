package protocol

// Judge is one agent's judgement of another agent's species on a given day.
// The zero Judge is not the empty judgement; use EmptyJudge.
type Judge struct {
	agent  Agent
	day    int
	target Agent
	result Species
}

// EmptyJudge returns the "no judgement" sentinel.
func EmptyJudge() Judge {
	return Judge{agent: AgentNone, day: -1, target: AgentNone, result: SpeciesUncertain}
}

// NewJudge builds a Judge from already typed values.
func NewJudge(agent Agent, day int, target Agent, result Species) Judge {
	return Judge{agent: agent, day: day, target: target, result: result}
}

// CompileJudge converts a raw judge message. It requires agent, day and
// target as integers and result as one of "HUMAN", "WEREWOLF" or "UNC".
func CompileJudge(raw map[string]any) (Judge, error) {
	values, err := ParseSemantic(raw, judgeSchema)
	if err != nil {
		return Judge{}, err
	}
	token := values.Str(KeyResult)
	result, err := ParseSpecies(token)
	if err != nil {
		return Judge{}, DecodeError{
			Message: MessageJudge,
			Field:   KeyResult,
			Value:   render(token),
			Err:     ErrUnknownToken,
		}
	}
	return NewJudge(
		Agent(values.Int(KeyAgent)),
		values.Int(KeyDay),
		Agent(values.Int(KeyTarget)),
		result,
	), nil
}

// Agent is the agent that judged.
func (j Judge) Agent() Agent { return j.agent }

// Day is the day of the judgement.
func (j Judge) Day() int { return j.day }

// Target is the judged agent.
func (j Judge) Target() Agent { return j.target }

// Result is the judged species.
func (j Judge) Result() Species { return j.result }

// IsEmpty reports whether j carries sentinel values instead of a real
// judgement.
func (j Judge) IsEmpty() bool {
	return j.day == -1 || j.agent.IsNone() || j.target.IsNone()
}
