package mesh

import "go.uber.org/zap"

func debugFields(faceIdx Index, sides int) []zap.Field {
	return []zap.Field{
		zap.Int("face", int(faceIdx)),
		zap.Int("sides", sides),
	}
}
