/*
 * MIT License
 *
 * Copyright (c) 2024 chessgo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// evalConfiguration holds the per-term weights of the static evaluator
// (§4.D), expressed as the same weight constants the spec lists so a
// test can verify the default configuration reproduces spec values.
type evalConfiguration struct {
	MaterialWeight    float64
	PsqtWeight        float64
	MobilityWeight    float64
	KingSafetyWeight  float64
	PawnStructWeight  float64
}

func defaultEvalConfig() evalConfiguration {
	return evalConfiguration{
		MaterialWeight:   1.0,
		PsqtWeight:       0.1,
		MobilityWeight:   0.2,
		KingSafetyWeight: 0.3,
		PawnStructWeight: 0.1,
	}
}
