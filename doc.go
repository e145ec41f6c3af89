// # History Voice Agent
//
// This repository provides a Go package for building a voice assistant specialized in historical knowledge. It bridges a real-time audio session runtime to three external AI services (Gladia for speech recognition, Gemini for text generation, and MiniMax for speech synthesis) behind one uniform conversational contract: complete audio in, transcript, reasoned reply, complete audio out.
package knowthepast
