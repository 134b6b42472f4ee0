// Copyright 2024-2025 vireodb
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

type CsvInput struct {
	Path   string `tag:"path"`
	Header bool   `tag:"header"`
}

type DebugOptions struct {
	Explain           bool `tag:"explain"`
	PrintResult       bool `tag:"printResult"`
	MaxOutputRowCount int  `tag:"maxOutputRowCount"`
}

type Config struct {
	Input CsvInput     `tag:"input"`
	Keys  string       `tag:"keys"`
	Debug DebugOptions `tag:"debug"`
}
